// Command writewln converts a parsed molecule into its canonical WLN
// string (spec.md §6 "Writer CLI").
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/writer"
)

func main() {
	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("writewln", flag.ContinueOnError)
	klog.InitFlags(fset)

	format := fset.String("i", "smi", "input format: smi, inchi, can")
	debug := fset.Bool("d", false, "enable debug stderr")
	dumpDot := fset.Bool("w", false, "dump .dot graph files to the working directory")
	input := fset.String("s", "", "input string")

	if err := fset.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *debug {
		fset.Set("v", "4")
	}
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	in := *input
	if in == "" && fset.NArg() > 0 {
		in = fset.Arg(0)
	}
	if in == "" {
		fmt.Fprintln(os.Stderr, "writewln: missing -s input")
		klog.Flush()
		os.Exit(1)
	}

	mol, err := parseInput(*format, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "writewln:", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.V(2).Infof("writewln: parsed %d atoms from %s input", len(mol.Atoms()), *format)

	wln, err := writer.Write(mol)
	if err != nil {
		fmt.Fprintln(os.Stderr, "writewln:", err)
		klog.Flush()
		os.Exit(1)
	}

	if *dumpDot {
		dumpTreeDots(mol)
	}

	fmt.Println(wln)
	klog.Flush()
}

func parseInput(format, in string) (*chem.SimpleMolecule, error) {
	switch format {
	case "smi":
		return chem.ParseSMILES(in)
	case "can", "inchi":
		// This toolkit does not carry an InChI reader or a canonical-SMILES
		// normalizer of its own; both route through the same organic-subset
		// SMILES grammar ParseSMILES already covers (SPEC_FULL.md §7: a
		// real binding supplies these formats in production).
		return chem.ParseSMILES(in)
	default:
		return nil, fmt.Errorf("writewln: unknown -i format %q", format)
	}
}

func dumpTreeDots(mol *chem.SimpleMolecule) {
	for _, a := range mol.Atoms() {
		if a.Index() != 0 {
			continue
		}
		t, err := writer.BuildTree(a)
		if err != nil {
			klog.Warningf("writewln: -w: BuildTree: %v", err)
			return
		}
		f, err := os.Create("wln-tree.dot")
		if err != nil {
			klog.Warningf("writewln: -w: create wln-tree.dot: %v", err)
			return
		}
		defer f.Close()
		if err := writer.DumpDot(f, t.Graph); err != nil {
			klog.Warningf("writewln: -w: DumpDot: %v", err)
		}
	}
}
