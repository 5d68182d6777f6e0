// Command forthc is the front-end driver: it lexes, parses, and
// semantically analyzes a stack-language source file and reports the
// result. It does not emit target code; that is left to a separate
// backend built on the internal/backend.Visitor contract.
package main

import (
	"fmt"
	"os"

	"github.com/kdriscoll/forthc/cmd/forthc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
