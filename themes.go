package main

import (
	"fmt"
	"strings"

	"go-concentration/internal/config"
	"go-concentration/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the theme catalog",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	catalog, err := theme.Load(cfg.ThemesFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, th := range catalog.Themes() {
		name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Color())).Render(th.Name())
		fmt.Fprintf(out, "%s  %d pairs  %s\n", name, th.Pairs(), strings.Join(th.Contents(), " "))
	}
	return nil
}
