package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mgomes/mimir/mimir"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	fs := flag.NewFlagSet("mimir", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	color := fs.Bool("color", false, "colorize token output")
	explore := fs.Bool("explore", false, "start the interactive token explorer")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}

	if *explore {
		return runExplorer()
	}

	if fs.NArg() != 1 {
		printUsage(os.Stdout)
		return nil
	}

	printer := newPlainPrinter()
	if *color {
		printer = newForcedColorPrinter(os.Stdout)
	}
	return scanFile(fs.Arg(0), os.Stdout, printer)
}

func scanFile(path string, out io.Writer, printer tokenPrinter) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if !utf8.Valid(input) {
		return fmt.Errorf("read source: %s: %w", path, errInvalidUTF8)
	}

	w := bufio.NewWriter(out)
	scanner := mimir.NewScanner(string(input))
	for {
		tok := scanner.ScanToken()
		if _, err := fmt.Fprintln(w, printer.render(tok)); err != nil {
			return fmt.Errorf("write tokens: %w", err)
		}
		if tok.Type == mimir.TokenEOF {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mimir [path]")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -color")
	fmt.Fprintln(w, "    colorize token output")
	fmt.Fprintln(w, "  -explore")
	fmt.Fprintln(w, "    start the interactive token explorer")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
