// Command kruskals reads a city-distance edge list and prints the minimum
// spanning tree (or forest, when the cities are not all connected) together
// with the sum of its distances.
//
//	kruskals [file] [--config kruskals.toml] [--method kruskal|prim] [--root CITY]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kruskals:", err)
		os.Exit(1)
	}
}
