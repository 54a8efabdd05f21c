// Command knightpath prints the fewest knight moves between two squares.
//
//	knightpath path '[[3,3],[7,6]]'
//	knightpath distance '[0,0]' --rows 8
//	knightpath batch queries.yaml --workers 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
