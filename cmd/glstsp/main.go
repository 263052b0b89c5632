// Command glstsp reads a TSPLIB EUC_2D instance and runs Guided Local
// Search against it, printing the matrix summary, the initial tour, the
// final cost, and the final tour (spec.md §6), each on its own line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arlotaylor/glstsp/gls"
	"github.com/arlotaylor/glstsp/tspio"
	"github.com/arlotaylor/glstsp/tspmatrix"
)

var (
	flagSteps   = flag.Int("steps", 50, "number of GLS penalise-and-reoptimise iterations")
	flagWorkers = flag.Int("workers", 4, "worker count for the parallel 2-opt scan")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: glstsp [-steps N] [-workers N] <instance.tsp>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *flagSteps, *flagWorkers); err != nil {
		fmt.Fprintln(os.Stderr, "glstsp:", err)
		os.Exit(1)
	}
}

func run(path string, steps, workers int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	coords, err := tspio.ParseTSPLIB(f)
	if err != nil {
		return err
	}

	m, err := tspmatrix.FromEuclidean(coords)
	if err != nil {
		return err
	}
	fmt.Printf("matrix: %d vertices\n", m.Size())

	initial, initialCost, err := tspio.NearestNeighbour(m)
	if err != nil {
		return err
	}
	fmt.Printf("initial tour: %s (cost %d)\n", initial, initialCost)

	route, err := gls.Solve(m, initial, gls.Options{Steps: steps, Workers: workers})
	if err != nil {
		return err
	}
	fmt.Printf("final cost: %d\n", route.Cost)
	fmt.Printf("final tour: %s\n", route.Tour)

	return nil
}
