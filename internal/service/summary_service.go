package service

import (
	"context"
	"errors"

	"smartsum/internal/domain"
	"smartsum/internal/export"
	"smartsum/internal/logging"
)

// SummaryServiceImpl ties a text source and a summarizer to file export
// and the clipboard, logging each step.
type SummaryServiceImpl struct {
	source     domain.Source
	summarizer domain.Summarizer
	logger     *logging.Logger
	format     export.Format
	copyFn     func(domain.SummaryResult) error
}

// NewSummaryService creates the service. A nil logger discards output and an
// empty defaultFormat saves plain text.
func NewSummaryService(source domain.Source, summarizer domain.Summarizer, logger *logging.Logger, defaultFormat export.Format) *SummaryServiceImpl {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	if defaultFormat == "" {
		defaultFormat = export.FormatText
	}
	return &SummaryServiceImpl{
		source:     source,
		summarizer: summarizer,
		logger:     logger,
		format:     defaultFormat,
		copyFn:     export.Copy,
	}
}

func (s *SummaryServiceImpl) Load(ctx context.Context, path string) (domain.Document, error) {
	doc, err := s.source.Load(ctx, path)
	if err != nil {
		s.logger.Error("load %s: %v", path, err)
		return domain.Document{}, err
	}
	s.logger.Info("loaded %s (%s, %d bytes, id=%s)", doc.Path, doc.Format, len(doc.Content), doc.ID)
	return doc, nil
}

func (s *SummaryServiceImpl) Summarize(doc domain.Document) (domain.SummaryResult, error) {
	res, err := s.summarizer.Summarize(doc.Content)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientContent) {
			s.logger.Info("summarize %s: %v", doc.Path, err)
		} else {
			s.logger.Error("summarize %s: %v", doc.Path, err)
		}
		return domain.SummaryResult{}, err
	}
	s.logger.Info("summarized %s: %d sentences, %d/%d words (%.1f%%)",
		doc.Path, len(res.Sentences), res.Stats.SummaryWords, res.Stats.OriginalWords, res.Stats.Ratio)
	s.logger.Debug("keywords for %s: %v", doc.Path, res.Keywords)
	return res, nil
}

// Save writes result to path in the format implied by its extension, or the
// configured default format.
func (s *SummaryServiceImpl) Save(path string, result domain.SummaryResult) error {
	format := export.FormatFromPath(path, s.format)
	if err := export.Save(path, format, result); err != nil {
		s.logger.Error("save %s: %v", path, err)
		return err
	}
	s.logger.Info("saved summary to %s (%s)", path, format)
	return nil
}

func (s *SummaryServiceImpl) Copy(result domain.SummaryResult) error {
	if err := s.copyFn(result); err != nil {
		s.logger.Error("copy to clipboard: %v", err)
		return err
	}
	s.logger.Info("copied summary to clipboard")
	return nil
}
