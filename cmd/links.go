package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zjrosen/navdrawer/internal/config"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the navigation links",
	Long: `List the navigation links in menu order, followed by the call-to-action.

Examples:
  navdrawer links
  navdrawer links --config ./site.yaml`,
	Args: cobra.NoArgs,
	RunE: runLinksList,
}

var linksAddCmd = &cobra.Command{
	Use:   "add <label> <target>",
	Short: "Append a navigation link to the config file",
	Long: `Append a link to the end of the menu and save it to the config file.
Comments and other settings in the file are preserved.

Examples:
  navdrawer links add Pricing "#pricing"`,
	Args: cobra.ExactArgs(2),
	RunE: runLinksAdd,
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.AddCommand(linksAddCmd)
}

func runLinksList(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for i, link := range cfg.Links {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, link.Label, link.Target)
	}
	if cfg.CTA.Label != "" {
		_, _ = fmt.Fprintf(w, "cta\t%s\t%s\n", cfg.CTA.Label, cfg.CTA.Target)
	}
	return w.Flush()
}

func runLinksAdd(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	link := config.LinkConfig{Label: args[0], Target: args[1]}
	path := configPath()
	if err := config.AddLink(path, link, cfg.Links); err != nil {
		return fmt.Errorf("adding link: %w", err)
	}
	cfg.Links = append(cfg.Links, link)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s → %s to %s\n", link.Label, link.Target, path)
	return nil
}
