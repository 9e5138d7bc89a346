package cmd

import (
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/m3ugen/m3ugen/color"
	"github.com/m3ugen/m3ugen/extract"
	"github.com/m3ugen/m3ugen/icon"
	"github.com/m3ugen/m3ugen/network"
	"github.com/m3ugen/m3ugen/provider"
	"github.com/m3ugen/m3ugen/source"
	"github.com/m3ugen/m3ugen/style"
	"github.com/m3ugen/m3ugen/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd groups commands that inspect the source registry.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the registry of streaming sites",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress headers and print one name per line")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only sources defined in the config")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only compiled-in sources")
	sourcesListCmd.Flags().StringP("filter", "f", "", "Show only sources whose name fuzzily matches")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd prints the registry in scrape order.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display every registered source in scrape order",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		filter := lo.Must(cmd.Flags().GetString("filter"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		h := func(s string) {
			if !raw {
				cmd.Println(headerStyle(s))
			}
		}

		printSources := func(sources []source.Source) {
			for _, s := range filterSources(sources, filter) {
				if raw {
					cmd.Println(s.Name)
					continue
				}
				cmd.Printf("%s %s\n", s.Name, style.Faint(s.URL))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			printSources(provider.Builtins())
		}

		printCustom := func() {
			h("Custom:")
			printSources(provider.Customs())
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if !raw {
				cmd.Println()
			}
			printCustom()
		}
	},
}

// filterSources keeps sources whose name fuzzily contains query, case-insensitively.
func filterSources(sources []source.Source, query string) []source.Source {
	if query == "" {
		return sources
	}
	return lo.Filter(sources, func(s source.Source, _ int) bool {
		return fuzzy.MatchFold(query, s.Name)
	})
}

func init() {
	sourcesCmd.AddCommand(sourcesLinksCmd)
	sourcesLinksCmd.SetOut(os.Stdout)
}

// sourcesLinksCmd fetches a single source and prints the links it yields.
var sourcesLinksCmd = &cobra.Command{
	Use:               "links [name]",
	Short:             "Fetch one source and print the stream links found on it",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSourceNames,
	Run: func(cmd *cobra.Command, args []string) {
		selected, err := provider.Select(args[:1])
		handleErr(err)

		fetcher := network.NewFetcher()
		for _, s := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), s.Name))
			page, err := fetcher.Fetch(s.URL)
			erase()
			handleErr(err)

			for _, link := range s.ExtractorOr(extract.Default()).Links(page) {
				cmd.Println(link)
			}
		}
	},
}
