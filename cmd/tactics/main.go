// Package main is the entry point for the tactics CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tactics",
	Short: "Grid movement and pathfinding queries",
	Long:  `tactics runs movement queries (find-path, reachable-set, path-cost) over authored map definitions.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(reachableCmd)
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}
