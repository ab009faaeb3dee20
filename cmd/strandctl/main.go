package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const productName = "strand"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// newLogger returns a debug logger writing to w when STRAND_DEBUG is set,
// otherwise a logger that drops everything.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("STRAND_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	newLogger(stderr).Debug("dispatch", "command", args[0])

	switch args[0] {
	case "transform":
		return runTransform(args[1:], stdin, stdout, stderr)
	case "chain":
		return runChain(args[1:], stdin, stdout, stderr)
	case "detect":
		return runDetect(args[1:], stdin, stdout, stderr)
	case "stats":
		return runStats(args[1:], stdin, stdout, stderr)
	case "ops":
		return runOps(args[1:], stdout, stderr)
	case "recipe":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "recipe subcommand required (list, save, show, delete, run)")
			return 2
		}
		return runRecipe(args[1], args[2:], stdin, stdout, stderr)
	case "version":
		return runVersion(stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `%s CLI (strandctl)

Usage:
  strandctl transform --op <name> [--input <text>] [--params k=v,...]
  strandctl chain --ops <a,b,c> [--reverse] [--input <text>]
  strandctl detect [--input <text>]
  strandctl stats [--input <text>] [--json]
  strandctl ops [--type <type>]
  strandctl recipe <list|save|show|delete|run> [flags]
  strandctl version

Input is read from stdin when --input is not given.
`, productName)
}
