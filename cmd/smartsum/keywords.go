package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smartsum/internal/domain"
)

func newKeywordsCmd(cfgPath *string) *cobra.Command {
	var chart bool
	var limit int

	cmd := &cobra.Command{
		Use:   "keywords [file]",
		Short: "Print the top keywords and their frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			res, err := a.svc.Summarize(doc)
			if err != nil {
				return err
			}
			items := res.Frequencies
			if chart {
				items = res.ChartKeywords
			}
			if limit > 0 && limit < len(items) {
				items = items[:limit]
			}
			printKeywords(cmd, items, chart)
			return nil
		},
	}
	cmd.Flags().BoolVar(&chart, "chart", false, "Show the visualization keywords as a bar chart")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of keywords to print")
	return cmd
}

func printKeywords(cmd *cobra.Command, items []domain.KeywordCount, bars bool) {
	out := cmd.OutOrStdout()
	width := 0
	for _, it := range items {
		width = max(width, len(it.Token))
	}
	for _, it := range items {
		if bars {
			fmt.Fprintf(out, "%-*s %s %d\n", width, it.Token, strings.Repeat("#", it.Count), it.Count)
			continue
		}
		fmt.Fprintf(out, "%-*s %d\n", width, it.Token, it.Count)
	}
}
