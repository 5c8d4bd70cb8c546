package scoring

import (
	"regexp"
	"strings"
)

// Complexity classifies text richness from word and paragraph counts.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ContentStats are pure, ephemeral statistics derived from free text.
type ContentStats struct {
	WordCount      int        `json:"word_count"`
	CharCount      int        `json:"char_count"`
	ParagraphCount int        `json:"paragraph_count"`
	HasEmoji       bool       `json:"has_emoji"`
	HasHashtags    bool       `json:"has_hashtags"`
	HasMentions    bool       `json:"has_mentions"`
	ReadingTimeMin int        `json:"reading_time_min"`
	Complexity     Complexity `json:"complexity"`
}

var (
	hashtagRe = regexp.MustCompile(`#\w+`)
	mentionRe = regexp.MustCompile(`@\w+`)
)

// Analyze computes ContentStats for arbitrary text. Empty input yields zero
// stats; it never fails.
func Analyze(text string) ContentStats {
	if strings.TrimSpace(text) == "" {
		return ContentStats{Complexity: ComplexityLow}
	}

	// normalize line endings so CRLF input paragraphs count like LF ones
	text = strings.ReplaceAll(text, "\r\n", "\n")

	words := strings.Fields(text)
	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	stats := ContentStats{
		WordCount:      len(words),
		CharCount:      len([]rune(text)),
		ParagraphCount: paragraphs,
		HasEmoji:       containsEmoji(text),
		HasHashtags:    hashtagRe.MatchString(text),
		HasMentions:    mentionRe.MatchString(text),
	}

	// ceil(words/200), one minute minimum.
	stats.ReadingTimeMin = (stats.WordCount + 199) / 200
	if stats.ReadingTimeMin < 1 {
		stats.ReadingTimeMin = 1
	}

	stats.Complexity = classify(stats.WordCount, stats.ParagraphCount)
	return stats
}

func classify(words, paragraphs int) Complexity {
	switch {
	case words >= 300 && paragraphs >= 3:
		return ComplexityHigh
	case words >= 100 && paragraphs >= 2:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

func containsEmoji(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, symbols
			return true
		case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
			return true
		}
	}
	return false
}
