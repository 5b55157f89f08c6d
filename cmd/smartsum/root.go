package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"smartsum/internal/config"
	"smartsum/internal/domain"
	"smartsum/internal/export"
	"smartsum/internal/logging"
	"smartsum/internal/service"
	"smartsum/internal/source"
	"smartsum/internal/summarizer"
	"smartsum/internal/tui"
)

// app holds the components assembled from the configuration.
type app struct {
	cfg    *config.AppConfig
	logger *logging.Logger
	svc    *service.SummaryServiceImpl
}

func newApp(cfgPath string) (*app, error) {
	_ = godotenv.Load()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	format, err := export.ParseFormat(cfg.Export.DefaultFormat)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log)
	svc := service.NewSummaryService(
		source.NewLoader(cfg.Source.MaxFileBytes),
		summarizer.NewFrequencySummarizer(cfg.Summarizer.Options()),
		logger,
		format,
	)
	return &app{cfg: cfg, logger: logger, svc: svc}, nil
}

func (a *app) Close() error { return a.logger.Close() }

// load reads the single positional argument, or stdin when there is none.
func (a *app) load(ctx context.Context, args []string) (domain.Document, error) {
	path := source.StdinPath
	if len(args) > 0 {
		path = args[0]
	}
	return a.svc.Load(ctx, path)
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var dark bool

	root := &cobra.Command{
		Use:   "smartsum [file]",
		Short: "Extractive text summarizer with keyword highlighting",
		Long: `smartsum picks the most representative sentences of a document by term
frequency, keeps them in their original order and shows the keywords that
drove the selection together with compression statistics.

Supported inputs: .txt, .md, .pdf, .html, or standard input ("-" or no file).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			m := tui.New(a.svc, doc, dark || a.cfg.UI.Theme == "dark")
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithInputTTY()).Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default: ./config.yaml or ~/.config/smartsum/config.yaml)")
	root.Flags().BoolVar(&dark, "dark", false, "Start in dark mode")

	root.AddCommand(newSummarizeCmd(&cfgPath))
	root.AddCommand(newKeywordsCmd(&cfgPath))
	root.AddCommand(newVersionCmd())
	return root
}
