// SPDX-License-Identifier: MIT

// Command mafx runs dense-matrix algebra on text-format matrix files.
//
// Usage:
//
//	mafx det A.txt
//	mafx mul A.txt B.txt -o C.txt
//	mafx rref A.txt --format latex
//	mafx random 3 3 --random-seed 42
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
