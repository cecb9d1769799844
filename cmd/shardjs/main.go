package main

import (
	"fmt"
	"os"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/shardlabs/shardjs/pkg/interp/eval"
	"github.com/shardlabs/shardjs/pkg/interp/lexer"
	"github.com/shardlabs/shardjs/pkg/interp/parser"
)

var errLine = color.New(color.FgRed)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: shardjs run [-v] [-e expr] <script.js>")
	fmt.Fprintln(os.Stderr, "  script.js: Path to script file to execute")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "run":
		runScript(os.Args[1:])
	default:
		fmt.Fprintln(os.Stderr, "Unknown command:", os.Args[1])
		os.Exit(1)
	}
}

func runScript(args []string) {
	var inline string
	opts, optind, err := getopt.Getopts(args, "ve:")
	if err != nil {
		usage()
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			log.SetLogLevel(log.Verbose)
		case 'e':
			inline = opt.Value
		}
	}
	args = args[optind:]

	src := inline
	if src == "" {
		if len(args) != 1 {
			usage()
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			fatalf("Error: Could not open file '%s'", args[0])
		}
		src = string(content)
	}

	execute(src)
}

// execute runs src through the full pipeline and exits nonzero on the
// first parse or runtime error.
func execute(src string) {
	s := lexer.NewScanner([]byte(src))
	p := parser.NewParser(s)

	program, err := p.Parse()
	if err != nil {
		// the parser message already carries line and column
		fatalf("%v", err)
	}

	if _, err := eval.New(os.Stdout).Eval(program); err != nil {
		fatalf("Runtime error: %v", err)
	}
}

func fatalf(format string, args ...any) {
	errLine.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
