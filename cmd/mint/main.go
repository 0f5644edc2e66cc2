// Package main provides the mint training toolkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mint-ml/mint/checkpoint"
	"github.com/mint-ml/mint/optim"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("mint %s\n", version)
			return
		case "rules":
			fmt.Println("Registered update rules:")
			for _, name := range optim.Rules() {
				fmt.Printf("  %s\n", name)
			}
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: mint inspect <checkpoint.json>")
				os.Exit(1)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "mint: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("mint - Training Loops for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  rules                List registered update rules")
	fmt.Println("  inspect <file>       Summarize a saved checkpoint")
}

// inspect prints a human-readable summary of a checkpoint written by a
// training run.
func inspect(path string) error {
	c, err := checkpoint.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Run:      %s\n", c.RunID)
	fmt.Printf("Created:  %s\n", c.CreatedAt)
	fmt.Printf("Epoch:    %d\n", c.TrainingState.Epoch)
	fmt.Printf("Best val: %f\n", c.TrainingState.BestValAccuracy)
	fmt.Printf("Weights:  %d\n", len(c.Weights))
	for _, w := range c.Weights {
		fmt.Printf("  %-16s %v (%d elements)\n", w.Name, w.Shape, len(w.Data))
	}
	return nil
}
