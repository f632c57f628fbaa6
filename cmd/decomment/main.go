package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "decomment",
	Short: "Comment-syntax lookup and stripping for source files",
	Long: `decomment knows the comment conventions of roughly seventy languages.
It classifies source text into code and comment spans, strips comments,
reports per-file comment statistics, and renders comment banners.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)
	rootCmd.Version = version

	rootCmd.AddCommand(spansCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(langsCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default: .decomment.{yaml,yml,toml,json} upward, then XDG, then home)")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().StringSlice("rules", nil, "extra rule files layered over the builtin table")
	rootCmd.PersistentFlags().Bool("progress", false, "force progress/ETA even when piped")
	rootCmd.PersistentFlags().Bool("no-progress", false, "disable progress/ETA")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("decomment: %v", err)
		os.Exit(1)
	}
}
