// Command nurbseval evaluates NURBS curves and surfaces described in YAML
// files and prints the results as YAML.
//
//	nurbseval curve point -f arc.yaml -u 0 -u 0.5 -u 1
//	nurbseval surface normal -f sphere.yaml -u 0.3 -v 0.6
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nurbseval:", err)
		os.Exit(1)
	}
}
