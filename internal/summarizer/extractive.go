// Package summarizer produces extractive summaries of article text by
// frequency-scoring sentences. No external services are involved.
package summarizer

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxSentences is the summary length used for news articles.
const DefaultMaxSentences = 5

// DefaultMaxWords caps the final summary size before translation.
const DefaultMaxWords = 500

var (
	sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)
	wordRe        = regexp.MustCompile(`[A-Za-z0-9]+`)
)

// Summarize picks the maxSentences highest-scoring sentences and returns
// them in their original order. Sentences score by the summed corpus
// frequency of their words, stopwords excluded. Text at or under the target
// length is returned unchanged.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := SplitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.TrimSpace(text)
	}

	freq := map[string]int{}
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stopwords[w] {
			continue
		}
		freq[w]++
	}

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		total := 0
		for _, w := range wordRe.FindAllString(strings.ToLower(s), -1) {
			total += freq[w]
		}
		ranked[i] = scored{index: i, score: total}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	keep := map[int]bool{}
	for _, r := range ranked[:maxSentences] {
		keep[r.index] = true
	}

	picked := make([]string, 0, maxSentences)
	for i, s := range sentences {
		if keep[i] {
			picked = append(picked, s)
		}
	}
	return strings.Join(picked, " ")
}

// TruncateWords bounds s to maxWords, cutting at the last sentence boundary
// inside the window when one exists. Truncated output ends with an ellipsis.
func TruncateWords(s string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	truncated := strings.Join(words[:maxWords], " ")

	endings := sentenceEndRe.FindAllStringIndex(truncated+" ", -1)
	if len(endings) > 0 {
		end := endings[len(endings)-1][1]
		if end > len(truncated) {
			end = len(truncated)
		}
		return strings.TrimSpace(truncated[:end]) + "..."
	}
	return truncated + "..."
}

// SplitSentences breaks text on terminal punctuation followed by
// whitespace. Good enough for news prose; abbreviations may over-split but
// scoring is tolerant of that.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	marked := sentenceEndRe.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
