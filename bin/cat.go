package main

import (
	"io"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	cat_command = app.Command(
		"cat", "Dump the raw data of one entry.")

	cat_command_file_arg = cat_command.Arg(
		"file", "The policy file to inspect",
	).Required().File()

	cat_command_index_arg = cat_command.Arg(
		"index", "The entry index to dump.",
	).Required().Int()

	cat_command_output_file = cat_command.Flag(
		"out", "Write to this file",
	).OpenFile(os.O_RDWR|os.O_CREATE|os.O_TRUNC, os.FileMode(0666))
)

func doCAT() {
	doc, err := getDocument(*cat_command_file_arg, false)
	kingpin.FatalIfError(err, "Can not parse policy file")

	idx := *cat_command_index_arg
	if idx < 0 || idx >= len(doc.Entries) {
		kingpin.Fatalf("No entry with index %v (%v entries)",
			idx, len(doc.Entries))
	}

	var fd io.WriteCloser = os.Stdout
	if *cat_command_output_file != nil {
		fd = *cat_command_output_file
		defer fd.Close()
	}

	fd.Write(doc.Entries[idx].Data)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "cat":
			doCAT()
		default:
			return false
		}
		return true
	})
}
