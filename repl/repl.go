/*
File    : mps/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for mps.
// Adapted from the teacher's repl.Repl (readline + fatih/color banner and
// prompt), rewired to drive the full lex -> parse -> analyze -> interpret
// pipeline per input block instead of evaluating one bare expression at a
// time, since mps statements are typed and scoped rather than a single
// freestanding expression language.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/mps/analyzer"
	"github.com/akashmaji946/mps/interp"
	"github.com/akashmaji946/mps/lexer"
	"github.com/akashmaji946/mps/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session. A
// single Repl carries no interpreter state of its own: each Start call
// creates one interp.Interpreter whose memory persists for the life of
// that session, so declarations made on one line are visible on the next.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license string and prompt.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner displays the welcome banner and usage instructions.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to mps!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user types '.exit', sends EOF
// (Ctrl+D), or readline itself errors out.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	in := interp.New(writer)
	an := analyzer.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, an, in, line)
	}
}

// evalLine lexes, parses and analyzes one line of input against the
// session's own Analyzer, so a declaration's type is remembered the same
// way Interpreter.memory remembers its value — a variable declared on one
// line can be read or reassigned on the next. Runtime errors are reported
// and the loop continues; nothing here ever calls os.Exit.
func (r *Repl) evalLine(writer io.Writer, an *analyzer.Analyzer, in *interp.Interpreter, line string) {
	tokens, err := lexer.New(line).Lex()
	if err != nil {
		redColor.Fprintf(writer, "[LEX ERROR] %v\n", err)
		return
	}

	block, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}

	if err := an.Analyze(block); err != nil {
		redColor.Fprintf(writer, "[TYPE ERROR] %v\n", err)
		return
	}

	if err := in.Exec(block); err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", err)
	}
}
