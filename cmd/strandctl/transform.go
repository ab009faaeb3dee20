package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/strandkit/strand/internal/textops"
)

func runTransform(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opName := fs.String("op", "", "Operation to apply (see 'strandctl ops')")
	input := fs.String("input", "", "Input text (default: stdin)")
	paramSpec := fs.String("params", "", "Operation parameters as k=v,k2=v2")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *opName == "" {
		fmt.Fprintln(stderr, "--op flag is required")
		return 2
	}

	op, ok := textops.Lookup(*opName)
	if !ok {
		fmt.Fprintf(stderr, "unknown operation: %s\n", *opName)
		return 2
	}

	params, err := parseParams(*paramSpec)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	data, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	out, err := op.Execute(context.Background(), data, params)
	if err != nil {
		fmt.Fprintf(stderr, "%s failed: %v\n", *opName, err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func runChain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chain", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opsSpec := fs.String("ops", "", "Comma-separated operation names, applied in order")
	reverse := fs.Bool("reverse", false, "Apply the inverse pipeline instead")
	input := fs.String("input", "", "Input text (default: stdin)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *opsSpec == "" {
		fmt.Fprintln(stderr, "--ops flag is required")
		return 2
	}

	pipeline := &textops.Pipeline{Reversible: true}
	for _, name := range strings.Split(*opsSpec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		pipeline.Operations = append(pipeline.Operations, textops.OperationConfig{Name: name})
	}
	if len(pipeline.Operations) == 0 {
		fmt.Fprintln(stderr, "--ops lists no operations")
		return 2
	}

	if *reverse {
		reversed, err := pipeline.Reverse()
		if err != nil {
			fmt.Fprintf(stderr, "cannot reverse pipeline: %v\n", err)
			return 1
		}
		pipeline = reversed
	}

	data, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	out, err := pipeline.Execute(context.Background(), data)
	if err != nil {
		fmt.Fprintf(stderr, "pipeline failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
