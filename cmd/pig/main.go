// Command pig reproduces the end-to-end driver workflow of
// original_source/pig/main_pig.cpp: load an input bundle, run
// branch-and-bound (optionally seeded by greedy), smooth the embedded
// paths, and save the embedding as a ".emb" file. The .emb holds the
// combinatorial paths; the smoothed polylines are not written.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/patchgraph/layoutembed/bnb"
	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/objio"
	"github.com/patchgraph/layoutembed/smoothing"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// Exit codes follow spec.md §6: 0 success; non-zero for missing input
// files, invalid mesh, infeasible problem, I/O failure.
const (
	exitOK             = 0
	exitMissingInput   = 1
	exitInvalidMesh    = 2
	exitInfeasible     = 3
	exitIOFailure      = 4
	exitSmoothingError = 5
)

func run(args []string) int {
	fs := flag.NewFlagSet("pig", flag.ContinueOnError)
	prefix := fs.String("input", "", "input bundle prefix (expects <prefix>_layout.obj, <prefix>_target.obj, <prefix>.lmk, <prefix>.inp)")
	output := fs.String("output", "output/pig_embedding", "output .emb file prefix")
	timeLimit := fs.Duration("time-limit", 60*time.Second, "branch-and-bound wall-clock budget")
	useGreedyInit := fs.Bool("greedy-init", false, "seed branch-and-bound with a greedy upper bound")
	smoothIters := fs.Int("smooth-iters", 1, "harmonic path-smoothing iterations (0 disables smoothing)")
	if err := fs.Parse(args); err != nil {
		return exitMissingInput
	}
	if *prefix == "" {
		fmt.Fprintln(os.Stderr, "pig: -input is required")
		return exitMissingInput
	}

	fmt.Println("Starting layout embedding process...")

	for _, suffix := range []string{"_layout.obj", "_target.obj", ".lmk"} {
		path := *prefix + suffix
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Input file not found: %s\n", path)
			return exitMissingInput
		}
	}

	fmt.Println("Loading input files...")
	fmt.Printf("Layout: %s_layout.obj\n", *prefix)
	fmt.Printf("Target: %s_target.obj\n", *prefix)

	in, warnings, err := objio.LoadInputBundle(*prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading input: %v\n", err)
		return exitInvalidMesh
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: landmark line %d: target vertex %d's stored position does not match the target mesh\n", w.Line, w.TargetV)
	}
	fmt.Println("Input loaded successfully.")

	fmt.Println("Running branch and bound optimization...")
	result, err := bnb.Run(in,
		bnb.WithGreedyInit(*useGreedyInit),
		bnb.WithTimeLimit(*timeLimit),
		bnb.WithExtendTimeLimitToEnsureSolution(true),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitInfeasible
	}
	fmt.Printf("Embedding complete: cost=%.6f iterations=%d timed_out=%v\n", result.TotalLength, result.NumIters, result.TimedOut)

	final, err := embedding.NewState(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitInvalidMesh
	}
	if err := final.Apply(result.Sequence); err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying result: %v\n", err)
		return exitInvalidMesh
	}

	if *smoothIters > 0 {
		fmt.Println("Smoothing paths...")
		if _, err := smoothing.SmoothPaths(final, *smoothIters, true); err != nil {
			fmt.Fprintf(os.Stderr, "Error smoothing paths: %v\n", err)
			return exitSmoothingError
		}
	}

	fmt.Println("Saving results...")
	if err := os.MkdirAll(parentDir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return exitIOFailure
	}
	f, err := os.Create(*output + ".emb")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		return exitIOFailure
	}
	defer f.Close()
	if err := final.WriteEmb(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		return exitIOFailure
	}

	fmt.Println("Process completed successfully!")
	fmt.Printf("Results saved to: %s.emb\n", *output)
	return exitOK
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
