// Command goray is the CLI front end for the path-tracing core in
// pkg/renderer: it parses a scene DSL file, drives the image tracer, and
// writes the resulting HDR buffer out as a PFM or tone-mapped PNG.
package main

import (
	"fmt"
	"os"

	"github.com/matteoilardi/goray/cmd/goray/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
