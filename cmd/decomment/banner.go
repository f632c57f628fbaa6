package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/banner"
	"github.com/phyten/decomment/internal/lang"
)

var bannerCmd = &cobra.Command{
	Use:   "banner --lang <id> <text>...",
	Short: "Render an ASCII comment banner",
	Long: `Banner frames text with a language's comment delimiters, ready to
paste into source. Line-comment languages repeat the marker on both
edges; block-comment languages use the open and close delimiters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBanner,
}

func init() {
	bannerCmd.Flags().StringP("lang", "l", "", "language id (required)")
	bannerCmd.Flags().Int("width", 0, "total width in display columns (default 80)")
	bannerCmd.Flags().Int("height", 0, "total lines including borders (default 5)")
	bannerCmd.Flags().String("halign", "", "horizontal alignment (left|center|right)")
	bannerCmd.Flags().String("valign", "", "vertical alignment (top|center|bottom)")
	bannerCmd.Flags().String("filler", "", "border filler pattern (default \"-\")")
	_ = bannerCmd.MarkFlagRequired("lang")
}

func runBanner(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("lang")
	reg, err := lang.LoadRegistry(s.Scan.RuleFiles)
	if err != nil {
		return err
	}
	rule, err := reg.Lookup(id)
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	halign, _ := cmd.Flags().GetString("halign")
	valign, _ := cmd.Flags().GetString("valign")
	filler, _ := cmd.Flags().GetString("filler")

	out, err := banner.Build(rule, strings.Join(args, " "), banner.Options{
		Width:  width,
		Height: height,
		HAlign: halign,
		VAlign: valign,
		Filler: filler,
	})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
