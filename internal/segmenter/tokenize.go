package segmenter

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z]+`)

var stopwords = defaultStopwords()

// Tokenize case-folds text and returns its maximal runs of ASCII letters,
// excluding stop words.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsStopWord reports whether token is in the fixed stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// StopWords returns the stop-word set as a slice.
func StopWords() []string {
	return append([]string(nil), stopwordList...)
}

var stopwordList = []string{
	"the", "is", "at", "which", "on", "a", "an", "and", "or", "but", "in", "with", "to", "for", "of", "as", "by",
}

func defaultStopwords() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		m[w] = struct{}{}
	}
	return m
}
