// Command wlngrep scans text for substrings the WLN grammar accepts
// (spec.md §6 "Grep CLI"). The compiled grammar DFA is itself the implicit
// pattern -- there is no separate pattern argument, matching how a regular
// grep's compiled regex stands in for the pattern text.
package main

import (
	"bytes"
	"fmt"
	"os"

	"flag"

	"github.com/plan-systems/klog"

	"github.com/fine-structures/wln/fsm"
	"github.com/fine-structures/wln/match"
)

func main() {
	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("wlngrep", flag.ContinueOnError)
	klog.InitFlags(fset)

	countOnly := fset.Bool("c", false, "print the match count only")
	matchesOnly := fset.Bool("o", false, "print matched substrings only")
	wholeLine := fset.Bool("x", false, "accept iff the whole line matches")
	literalString := fset.Bool("s", false, "interpret the argument as a literal string, not a file path")
	skipMinimize := fset.Bool("m", false, "skip DFA minimization")
	dumpDFA := fset.Bool("d", false, "dump the compiled DFA as .dot to stderr")

	if err := fset.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	if fset.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "wlngrep: missing <file_or_string>")
		klog.Flush()
		os.Exit(2)
	}
	arg := fset.Arg(0)

	dfa := fsm.Compile(*skipMinimize)
	klog.V(2).Infof("wlngrep: compiled grammar DFA with %d states", dfa.NumStates())

	if *dumpDFA {
		if err := fsm.DumpDot(os.Stderr, dfa); err != nil {
			klog.Warningf("wlngrep: -d: DumpDot: %v", err)
		}
	}

	var data []byte
	if *literalString {
		data = []byte(arg)
	} else {
		b, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "wlngrep:", err)
			klog.Flush()
			os.Exit(2)
		}
		data = b
	}

	if *wholeLine {
		found := false
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(line) > 0 && match.WholeMatch(dfa, line) {
				found = true
				if !*countOnly {
					fmt.Println(string(line))
				}
			}
		}
		klog.Flush()
		if found {
			os.Exit(0)
		}
		os.Exit(1)
	}

	matches := match.FindAll(dfa, data)
	klog.Flush()

	switch {
	case *countOnly:
		fmt.Println(len(matches))
	case *matchesOnly:
		for _, m := range matches {
			fmt.Println(string(data[m.Start:m.End]))
		}
	default:
		for _, line := range bytes.Split(data, []byte("\n")) {
			if match.AnyMatch(dfa, line) {
				fmt.Println(string(line))
			}
		}
	}

	if len(matches) == 0 {
		os.Exit(1)
	}
	os.Exit(0)
}
