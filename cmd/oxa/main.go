/*
File   : oxa/cmd/oxa/main.go
Package: main
*/

// Command oxa is the interpreter's entry point: no arguments starts the
// REPL, one argument runs that file, and --help/--version are handled
// separately, grounded on the teacher's main/main.go dispatch.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/oxa"
	"github.com/akashmaji946/oxa/oerrors"
	"github.com/akashmaji946/oxa/repl"
)

const (
	version = "v0.1.0"
	author  = "Oxa contributors"
	license = "MIT"
	prompt  = "oxa >>> "
	line    = "----------------------------------------------------------------"
	banner = `
   ___
  / _ \ __ __ ___ _
 / // / \ \ / / _ '\
/____/ /_\_\ \___,_/
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
	}

	switch len(os.Args) {
	case 1:
		err := repl.New(banner, version, author, line, license, prompt).Start(os.Stdout)
		os.Exit(oerrors.ExitCode(err))
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		redColor.Fprintln(os.Stderr, "[USAGE ERROR] Usage: oxa [path-to-file]")
		os.Exit(1)
	}
}

// runFile executes path and returns the process exit code spec.md §6 maps
// each error kind to.
func runFile(path string) int {
	err := oxa.RunFile(path, os.Stdout, os.Stderr)
	if err != nil {
		if oe, ok := err.(*oerrors.Error); ok {
			redColor.Fprintf(os.Stderr, "%s\n", oe.Error())
		} else {
			redColor.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	return oerrors.ExitCode(err)
}

func showHelp() {
	cyanColor.Println("Oxa - a small tree-walking scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  oxa                    Start interactive REPL mode")
	yellowColor.Println("  oxa <path-to-file>     Execute an Oxa source file")
	yellowColor.Println("  oxa --help             Display this help message")
	yellowColor.Println("  oxa --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                  Exit the REPL")
}

func showVersion() {
	yellowColor.Println("oxa " + version)
}
