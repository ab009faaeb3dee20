package main

import (
	"fmt"
	"io"
	"runtime/debug"
)

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "dev"

func runVersion(stdout io.Writer) int {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	fmt.Fprintf(stdout, "strandctl %s\n", v)
	return 0
}
