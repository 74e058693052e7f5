package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	ls_command = app.Command(
		"ls", "List policy entries.")

	ls_command_file_arg = ls_command.Arg(
		"file", "The policy file to inspect",
	).Required().OpenFile(os.O_RDONLY, os.FileMode(0666))

	ls_command_lenient = ls_command.Flag(
		"lenient", "Skip malformed entries instead of aborting.",
	).Bool()
)

func doLS() {
	doc, err := getDocument(*ls_command_file_arg, *ls_command_lenient)
	kingpin.FatalIfError(err, "Can not parse policy file")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Idx",
		"Key",
		"Value",
		"Type",
		"Code",
		"Size",
		"DataLen",
		"Data",
	})
	table.SetCaption(true, fmt.Sprintf(
		"%v policy entries", len(doc.Entries)))
	defer table.Render()

	for idx, entry := range doc.Entries {
		table.Append([]string{
			fmt.Sprintf("%v", idx),
			entry.Key,
			entry.ValueName,
			entry.RegType().Name,
			fmt.Sprintf("%v", entry.Type),
			fmt.Sprintf("%v", entry.Size),
			fmt.Sprintf("%v", len(entry.Data)),
			dataPreview(entry.Data),
		})
	}

	for _, decode_err := range doc.Errors {
		fmt.Fprintf(os.Stderr, "Error: %v\n", decode_err)
	}
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "ls":
			doLS()
		default:
			return false
		}
		return true
	})
}
