package main

import (
	"encoding/json"
	"fmt"

	"github.com/Velocidex/ordereddict"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/regpol/parser"
)

var (
	json_command = app.Command(
		"json", "Dump policy entries as JSON.")

	json_command_file_arg = json_command.Arg(
		"file", "The policy file to inspect",
	).Required().File()

	json_command_lenient = json_command.Flag(
		"lenient", "Skip malformed entries instead of aborting.",
	).Bool()
)

func doJSON() {
	doc, err := getDocument(*json_command_file_arg, *json_command_lenient)
	kingpin.FatalIfError(err, "Can not parse policy file")

	result := []*ordereddict.Dict{}
	for idx, entry := range doc.Entries {
		info := parser.ModelEntry(entry)
		result = append(result, ordereddict.NewDict().
			Set("Index", idx).
			Set("Key", info.Key).
			Set("ValueName", info.ValueName).
			Set("Type", info.Type).
			Set("TypeName", info.TypeName).
			Set("Size", info.Size).
			Set("DataLen", info.DataLen).
			Set("Data", info.Data))
	}

	serialized, err := json.MarshalIndent(result, "", " ")
	kingpin.FatalIfError(err, "Marshal")

	fmt.Println(string(serialized))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "json":
			doJSON()
		default:
			return false
		}
		return true
	})
}
