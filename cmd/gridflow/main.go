// Command gridflow runs steady-state power-flow studies on spatial
// resistive networks, driven by a YAML run configuration.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("gridflow ")

	root := &cobra.Command{
		Use:           "gridflow",
		Short:         "Steady-state power-flow studies on spatial resistive networks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
