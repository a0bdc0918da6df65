package main

import (
	"io"
	"os"

	"github.com/eventtools/eventkv/internal/config"
	"github.com/eventtools/eventkv/internal/derive"
	"github.com/eventtools/eventkv/internal/document"
	"github.com/eventtools/eventkv/internal/exit"
	"github.com/eventtools/eventkv/internal/scanner"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run executes the tool and returns its exit code. The rendered document
// goes to stdout; diagnostics and the derivation trace go to stderr.
func run(args []string, stdout io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		return fail(exitResult)
	}

	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return fail(exit.Errorf("Error: failed to read %s: %v\n", cfg.InputFile, err))
	}

	pairs, err := scanner.Parse(string(data))
	if err != nil {
		return fail(exit.Errorf("Error: failed to parse %s: %v\n", cfg.InputFile, err))
	}

	fifth, err := derive.FifthValue(pairs, os.Stderr)
	if err != nil {
		return fail(exit.Errorf("Error: %v\n", err))
	}
	pairs[derive.Key] = derive.Format(fifth)

	doc, err := document.Render(pairs)
	if err != nil {
		return fail(exit.Errorf("Error: %v\n", err))
	}

	if _, err := stdout.Write(doc); err != nil {
		return fail(exit.Errorf("Error: failed to write document: %v\n", err))
	}

	return exit.CodeSuccess
}

func fail(result *exit.Result) int {
	result.Print()
	return result.ExitCode
}
