package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/strandkit/strand/internal/textops"
)

func runDetect(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "Input text (default: stdin)")
	decode := fs.Bool("decode", false, "Also attempt every suggested decode")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	data, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	ctx := context.Background()
	results, err := textops.NewFormatDetector().Detect(ctx, data)
	if err != nil {
		fmt.Fprintf(stderr, "detect failed: %v\n", err)
		return 1
	}
	if len(results) == 0 {
		fmt.Fprintln(stdout, "no encoding detected")
		return 0
	}

	for _, r := range results {
		fmt.Fprintf(stdout, "%-16s %3.0f%%  %s\n", r.Encoding, r.Confidence*100, r.Reasoning)
	}

	if *decode {
		decoded, err := textops.DecodeAll(ctx, data)
		if err != nil {
			fmt.Fprintf(stderr, "decode failed: %v\n", err)
			return 1
		}
		for _, d := range decoded {
			fmt.Fprintf(stdout, "%s => %s\n", d.Detection.Encoding, string(d.Decoded))
		}
	}
	return 0
}

func runOps(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ops", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opType := fs.String("type", "", "Filter by operation type (encode, decode, hash, compress, decompress, transform)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var ops []textops.Operation
	if *opType == "" {
		ops = textops.List()
	} else {
		ops = textops.ListByType(textops.OperationType(*opType))
	}
	if len(ops) == 0 {
		fmt.Fprintln(stdout, "no operations")
		return 0
	}

	for _, op := range ops {
		reversible := " "
		if _, ok := op.Reverse(); ok {
			reversible = "*"
		}
		fmt.Fprintf(stdout, "%s %-20s %-10s %s\n", reversible, op.Name(), op.Type(), op.Description())
	}
	return 0
}
