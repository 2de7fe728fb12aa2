// Command lending-demo drives the lending core from the command line:
// it runs a reference scenario, prints the lending policy and dumps the journal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
