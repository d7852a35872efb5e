// Command seedmin searches for small seed sets that spread to a target
// fraction of a graph under the Independent Cascade or Linear Threshold
// diffusion models.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seedmin:", err)
		os.Exit(1)
	}
}
