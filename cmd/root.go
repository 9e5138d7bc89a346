// Package cmd implements the command-line interface for m3ugen.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/m3ugen/m3ugen/color"
	"github.com/m3ugen/m3ugen/constant"
	"github.com/m3ugen/m3ugen/extract"
	"github.com/m3ugen/m3ugen/icon"
	"github.com/m3ugen/m3ugen/key"
	"github.com/m3ugen/m3ugen/log"
	"github.com/m3ugen/m3ugen/network"
	"github.com/m3ugen/m3ugen/playlist"
	"github.com/m3ugen/m3ugen/provider"
	"github.com/m3ugen/m3ugen/source"
	"github.com/m3ugen/m3ugen/style"
	"github.com/m3ugen/m3ugen/util"
	"github.com/m3ugen/m3ugen/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("timeout", "t", constant.DefaultTimeoutSeconds, "Seconds to wait for each source before giving up")
	lo.Must0(viper.BindPFlag(key.FetchTimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	rootCmd.Flags().StringP("output", "o", constant.DefaultPlaylist, "Path of the playlist file to write")
	lo.Must0(viper.BindPFlag(key.PlaylistPath, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().StringSliceP("source", "S", []string{}, "Scrape only the named sources")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSourceNames))
	lo.Must0(viper.BindPFlag(key.SourcesDefault, rootCmd.Flags().Lookup("source")))
}

// rootCmd fetches every selected source and writes the playlist.
var rootCmd = &cobra.Command{
	Use:   constant.M3ugen,
	Short: "Scrape streaming sites for stream links and write an M3U playlist",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Scrape streaming sites for stream links and write an M3U playlist"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		sources, err := provider.Select(viper.GetStringSlice(key.SourcesDefault))
		handleErr(err)

		path := where.Playlist(viper.GetString(key.PlaylistPath))

		erase := util.PrintErasable(fmt.Sprintf("%s Scraping %s...", icon.Get(icon.Progress), util.Quantify(len(sources), "source", "sources")))
		n, err := playlist.Generate(sources, network.NewFetcher(), extract.Default(), path)
		erase()
		handleErr(err)

		fmt.Printf(
			"%s wrote %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(n, "entry", "entries"),
			style.Fg(color.Yellow)(path),
		)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func completionSourceNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Uniq(lo.Map(provider.All(), func(s source.Source, _ int) string {
		return s.Name
	})), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
