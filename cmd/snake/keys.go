package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/platform/keymap"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the controls",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	fmt.Println("Controls:")
	fmt.Println()

	for _, group := range keymap.Default().FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Printf("  %-8s %s\n", h.Key, h.Desc)
		}
	}
}
