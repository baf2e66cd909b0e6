package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mgomes/tape/tape"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "lsp":
		return runLSP()
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	inline := fs.String("e", "", "program source to run instead of a file")
	checkOnly := fs.Bool("check", false, "only translate the program without executing")
	verbose := fs.Bool("v", false, "log translation and run details to stderr")
	logFile := fs.String("log-file", "", "append JSON logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, *verbose, *logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	name, source, err := loadProgramSource(*inline, fs.Args())
	if err != nil {
		return err
	}

	program, err := tape.Translate(source)
	if err != nil {
		logger.Error("translation failed", "program", name, "error", err)
		return fmt.Errorf("compile failed: %w", err)
	}
	logger.Debug("translated program", "program", name, "ops", program.Len(), "loops", program.Loops())
	if *checkOnly {
		return nil
	}

	machine := tape.NewMachine(bufio.NewReader(os.Stdin), tape.NewByteWriter(os.Stdout))
	start := time.Now()
	runErr := machine.Run(program)
	logger.Debug("run finished", "program", name, "steps", machine.Steps(), "elapsed", time.Since(start))
	if runErr != nil {
		logger.Error("run failed", "program", name, "error", runErr)
		return fmt.Errorf("execution failed: %w", runErr)
	}
	return nil
}

func loadProgramSource(inline string, remaining []string) (string, string, error) {
	if inline != "" {
		if len(remaining) > 0 {
			return "", "", errors.New("tape run: use either -e or a program path, not both")
		}
		return "<inline>", inline, nil
	}
	if len(remaining) == 0 {
		return "", "", errors.New("tape run: program path required")
	}
	path, err := filepath.Abs(remaining[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve program path: %w", err)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read program: %w", err)
	}
	return path, string(input), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-e source] [-check] [-v] [-log-file path] <program>")
	fmt.Fprintln(os.Stderr, "    translate and execute a program, reading stdin and writing stdout")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] [-minify] <path...>")
	fmt.Fprintln(os.Stderr, "    normalize .b and .bf source files")
	fmt.Fprintln(os.Stderr, "  analyze <program>")
	fmt.Fprintln(os.Stderr, "    report suspicious constructs")
	fmt.Fprintln(os.Stderr, "  lsp")
	fmt.Fprintln(os.Stderr, "    serve diagnostics over the language server protocol on stdio")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    start an interactive session")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
