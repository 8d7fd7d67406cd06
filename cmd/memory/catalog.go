package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the card catalog",
	Long:  `Shows every card that can be dealt and the largest grid the catalog fills.`,
	Args:  cobra.NoArgs,
	Run:   runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) {
	_, cat, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries := cat.Entries()
	if len(entries) == 0 {
		fmt.Println("No cards available.")
		return
	}

	fmt.Println("Cards:")
	fmt.Println()
	fmt.Printf("  %-4s  %-5s  %s\n", "ID", "Image", "Name")
	fmt.Printf("  %-4s  %-5s  %s\n", "--", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-4d  %-5s  %s\n", e.ID, e.Image, e.Name)
	}

	fmt.Println()
	fmt.Printf("%d cards deal grids of up to %d cells.\n", len(entries), 2*len(entries))
}
