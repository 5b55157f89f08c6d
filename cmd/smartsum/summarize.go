package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartsum/internal/export"
)

func newSummarizeCmd(cfgPath *string) *cobra.Command {
	var formatName, output string

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Print the summary without starting the UI",
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

			if output != "" && formatName == "" {
				return a.svc.Save(output, res)
			}
			if formatName == "" {
				formatName = a.cfg.Export.DefaultFormat
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if output != "" {
				return export.Save(output, format, res)
			}
			if err := export.Write(cmd.OutOrStdout(), format, res); err != nil {
				return err
			}
			if format == export.FormatText {
				st := res.Stats
				fmt.Fprintf(cmd.ErrOrStderr(), "Original: %d words | Summary: %d words | Compression: %.1f%%\n",
					st.OriginalWords, st.SummaryWords, st.Ratio)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: text, json or yaml (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
