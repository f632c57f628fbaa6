package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phyten/decomment/internal/lang"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the known languages and their comment syntax",
	Args:  cobra.NoArgs,
	RunE:  runLangs,
}

func init() {
	langsCmd.Flags().StringP("output", "o", "", "output format (table|json)")
}

type langRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Line     []string `json:"line,omitempty"`
	Block    []string `json:"block,omitempty"`
	Nestable bool     `json:"nestable,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	Caveats  string   `json:"caveats,omitempty"`
}

func runLangs(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	reg, err := lang.LoadRegistry(s.Scan.RuleFiles)
	if err != nil {
		return err
	}

	byID := make(map[string][]string)
	for alias, id := range reg.Aliases() {
		byID[id] = append(byID[id], alias)
	}
	rows := make([]langRow, 0, reg.Len())
	for _, id := range reg.IDs() {
		rule, err := reg.Lookup(id)
		if err != nil {
			return err
		}
		aliases := byID[id]
		sort.Strings(aliases)
		row := langRow{
			ID:       rule.ID,
			Name:     rule.Name,
			Nestable: rule.NestsAny(),
			Aliases:  aliases,
			Caveats:  rule.Caveats,
		}
		for _, m := range rule.LineMarkers {
			row.Line = append(row.Line, m.Text)
		}
		for _, d := range rule.BlockDelims {
			row.Block = append(row.Block, d.Open+" "+d.Close)
		}
		rows = append(rows, row)
	}

	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = s.Output.Format
	}
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LANG\tNAME\tLINE\tBLOCK\tNESTABLE\tALIASES")
	for _, row := range rows {
		nest := ""
		if row.Nestable {
			nest = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ID,
			row.Name,
			strings.Join(row.Line, " "),
			strings.Join(row.Block, "  "),
			nest,
			strings.Join(row.Aliases, " "),
		)
	}
	return w.Flush()
}
