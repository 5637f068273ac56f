// Command rex compiles a single regex pattern and reports whether
// each following argument matches it, exiting 0 iff every argument
// was accepted.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MaxXSoft/reX/dfa"
	"github.com/MaxXSoft/reX/syntax"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <pattern> [string...]", os.Args[0])
	}

	node, err := syntax.Parse(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	model := dfa.Minimize(dfa.FromNFA(node.Lower()))

	allAccepted := true
	for _, s := range os.Args[2:] {
		ok := dfa.Test(model, s)
		if !ok {
			allAccepted = false
		}
		fmt.Printf("%s\t%s\n", verdict(ok), s)
	}

	if !allAccepted {
		os.Exit(1)
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
