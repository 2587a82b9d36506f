package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/batsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List editions, difficulties and heroes",
	Long:  `Shows the registered editions and the difficulties and heroes from the active settings.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	editions := registry.List()

	fmt.Println("Editions:")
	maxIDLen := 2 // "ID" header
	for _, e := range editions {
		maxIDLen = max(maxIDLen, len(e.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, e := range editions {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	for _, d := range settings.Difficulties {
		fmt.Printf("  %-12s  %2d fps  power-up every %ds  %s\n", d.Name, d.FPS, d.PowerUpDelay, d.Description)
	}

	fmt.Println()
	fmt.Println("Heroes:")
	for _, c := range settings.Characters {
		marker := " "
		if c.Name == settings.DefaultCharacter {
			marker = "*"
		}
		skin := c.Skin()
		fmt.Printf(" %s%-10s  %c%c%c  %s\n", marker, c.Name, skin.Body, skin.Body, skin.HeadRight, c.Description)
	}

	fmt.Println()
	fmt.Println("Run 'batsnake play' to start.")
}
