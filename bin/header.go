package main

import (
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/regpol/parser"
)

var (
	header_command = app.Command(
		"header", "Inspect the file header.")

	header_command_file_arg = header_command.Arg(
		"file", "The policy file to inspect",
	).Required().File()

	header_command_verbose = header_command.Flag(
		"verbose", "Dump the raw header struct.",
	).Bool()
)

func doHeader() {
	header := parser.NewREGPOL_HEADER(*header_command_file_arg, 0)
	fmt.Println(header.DebugString())

	if *header_command_verbose {
		parser.Debug(header)
	}

	err := header.IsValid()
	kingpin.FatalIfError(err, "Invalid header")

	fmt.Println("OK")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case "header":
			doHeader()
		default:
			return false
		}
		return true
	})
}
