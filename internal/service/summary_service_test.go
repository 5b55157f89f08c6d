package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsum/internal/domain"
	"smartsum/internal/export"
	"smartsum/internal/logging"
	"smartsum/internal/source"
	"smartsum/internal/summarizer"
)

const article = "Gophers build long tunnels under the meadow. " +
	"The tunnels connect feeding areas with nesting chambers. " +
	"Farmers often consider gophers a pest in their fields. " +
	"Predators such as owls and snakes hunt gophers at night. " +
	"Some tunnels extend for hundreds of feet underground."

func newTestService(t *testing.T, buf *bytes.Buffer) *SummaryServiceImpl {
	t.Helper()
	logger := logging.NewWriter(buf, "debug")
	return NewSummaryService(source.NewLoader(0), summarizer.NewFrequencySummarizer(summarizer.Options{}), logger, export.FormatText)
}

func TestLoadAndSummarize(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestService(t, &logs)
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte(article), 0o644))

	doc, err := svc.Load(context.Background(), path)
	require.NoError(t, err)
	res, err := svc.Summarize(doc)
	require.NoError(t, err)

	assert.Len(t, res.Sentences, 3)
	assert.Contains(t, res.Keywords, "gophers")
	assert.Contains(t, logs.String(), "summarized "+path)
	assert.Contains(t, logs.String(), "DEBUG: ")
}

func TestSummarizeInsufficientContent(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestService(t, &logs)
	_, err := svc.Summarize(domain.Document{Path: "short", Content: "Too short."})
	assert.ErrorIs(t, err, domain.ErrInsufficientContent)
	assert.NotContains(t, logs.String(), "ERROR: ")
}

func TestLoadErrorIsLogged(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestService(t, &logs)
	_, err := svc.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, logs.String(), "ERROR: ")
}

func TestSaveUsesExtension(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestService(t, &logs)
	res, err := svc.Summarize(domain.Document{Path: "mem", Content: article})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, svc.Save(path, res))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded domain.SummaryResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.Summary, decoded.Summary)
}

func TestCopy(t *testing.T) {
	var logs bytes.Buffer
	svc := newTestService(t, &logs)
	var copied string
	svc.copyFn = func(r domain.SummaryResult) error {
		copied = r.Summary
		return nil
	}
	require.NoError(t, svc.Copy(domain.SummaryResult{Summary: "text."}))
	assert.Equal(t, "text.", copied)

	svc.copyFn = func(domain.SummaryResult) error { return errors.New("no clipboard") }
	assert.Error(t, svc.Copy(domain.SummaryResult{Summary: "text."}))
}
