/*
File   : oxa/repl/repl.go
Package: repl
*/

// Package repl implements Oxa's interactive Read-Eval-Print Loop, grounded on
// the teacher's readline-backed REPL: a banner, colored diagnostics, and a
// single environment that persists across lines so declarations on one line
// are visible to the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/oxa"
	"github.com/akashmaji946/oxa/environment"
	"github.com/akashmaji946/oxa/oerrors"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with the given banner, version, author, separator line,
// license string, and prompt.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the welcome banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Oxa!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits, input ends
// cleanly (Eof/interrupt), or reading stdin fails outright. Every line is
// evaluated against the same Environment, so variable bindings persist
// across lines. A genuine stdin read failure — anything Readline returns
// other than io.EOF or readline.ErrInterrupt — is reported and returned as
// an *oerrors.Error with Code IO, per spec.md §7's FileError/IO split.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return oerrors.NewIOError(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				writer.Write([]byte("Good Bye!\n"))
				return nil
			}
			ioErr := oerrors.NewIOError(err)
			redColor.Fprintf(writer, "%s\n", ioErr.Error())
			return ioErr
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, env)
	}
}

// executeLine runs one line against env, reporting any scanner, parser or
// runtime diagnostics in red. Print statements write their own output
// directly through oxa.RunWithEnvironment.
func (r *Repl) executeLine(writer io.Writer, line string, env *environment.Environment) {
	var diagnostics strings.Builder
	oxa.RunWithEnvironment(line, env, writer, &diagnostics)
	if diagnostics.Len() > 0 {
		redColor.Fprint(writer, diagnostics.String())
	}
}
