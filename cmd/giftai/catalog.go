package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/giftai/giftai/internal/cli"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the active gift catalog",
		RunE:  runCatalog,
	}

	cmd.Flags().String("format", "table", "Output format (table, json)")

	return cmd
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	store, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"items": store.Items()})
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Catalog (%d items)", store.Len())))
	for _, item := range store.Items() {
		fmt.Printf("  %s  %s (%s, base %.0f)\n",
			cli.SubtleStyle.Render(item.ID), item.Name, item.Category, item.BasePrice)
		fmt.Printf("      %s\n", item.BaseDescription)
		if len(item.Tags) > 0 {
			fmt.Printf("      %s\n", cli.SubtleStyle.Render(strings.Join(item.Tags, ", ")))
		}
	}
	return nil
}
