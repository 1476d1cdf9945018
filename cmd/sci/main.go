// Package main is the sci command line front end: it tokenizes and parses
// sci source files and prints the results.
package main

import (
	"os"

	"github.com/AlexanderOnbysh/compilers-course/cmd/sci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
