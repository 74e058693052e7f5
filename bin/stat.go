package main

import (
	"encoding/json"
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	stat_command = app.Command(
		"stat", "Print summary statistics for a policy file.")

	stat_command_file_arg = stat_command.Arg(
		"file", "The policy file to inspect",
	).Required().File()

	stat_command_lenient = stat_command.Flag(
		"lenient", "Skip malformed entries instead of aborting.",
	).Bool()
)

func doStat() {
	doc, err := getDocument(*stat_command_file_arg, *stat_command_lenient)
	kingpin.FatalIfError(err, "Can not parse policy file")

	serialized, err := json.MarshalIndent(doc.Stats(), "", " ")
	kingpin.FatalIfError(err, "Marshal")

	fmt.Println(string(serialized))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "stat":
			doStat()
		default:
			return false
		}
		return true
	})
}
