// Command rexviz compiles a regex pattern and writes a Graphviz DOT
// rendering of one stage of the pipeline: the Thompson NFA, the raw
// subset-construction DFA, or the minimized DFA (the default).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MaxXSoft/reX/dfa"
	"github.com/MaxXSoft/reX/dot"
	"github.com/MaxXSoft/reX/syntax"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA")
	dfaFlag := flag.Bool("dfa", false, "export the raw (non-minimized) DFA")
	minFlag := flag.Bool("mindfa", false, "export the minimized DFA (default)")
	outFile := flag.String("o", "-", "output file, - for stdout")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: rexviz -re <pattern> [-nfa|-dfa|-mindfa] [-o file]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	node, err := syntax.Parse(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rexviz: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	switch {
	case *nfaFlag:
		dot.WriteNFA(&buf, node.Lower())
	case *dfaFlag:
		dot.WriteDFA(&buf, dfa.FromNFA(node.Lower()))
	case *minFlag:
		dot.WriteDFA(&buf, dfa.Minimize(dfa.FromNFA(node.Lower())))
	default:
		dot.WriteDFA(&buf, dfa.Minimize(dfa.FromNFA(node.Lower())))
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rexviz: cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, &buf); err != nil {
		fmt.Fprintf(os.Stderr, "rexviz: %v\n", err)
		os.Exit(1)
	}
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
