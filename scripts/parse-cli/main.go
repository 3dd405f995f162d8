// Package main provides a CLI for trying the transaction parser from a shell.
//
// Usage:
//
//	parse-cli parse <text...>          Parse a message into a transaction
//	parse-cli amount <text...>         Extract only the amount
//	parse-cli classify <text...>       Show direction and category with the deciding keywords
//	parse-cli ask <text...>            Check whether a message is a question
//	parse-cli categories [--type T]    List the taxonomy
//	parse-cli check-config <file>      Validate a keyword table file
//	parse-cli dump-defaults [--format] Print the built-in tables
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
