package scoring

import "regexp"

// spamPatterns flag content that should never earn engagement. Matching any
// pattern is a validation error and a heavy scoring penalty.
var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(free|earn)\s+(coins?|money|fifa\s*points)\b`),
	regexp.MustCompile(`(?i)\bclick\s+here\b`),
	regexp.MustCompile(`(?i)\b(buy|sell)\s+now\b`),
	regexp.MustCompile(`(?i)\blimited\s+(time\s+)?offer\b`),
	regexp.MustCompile(`(?i)\bdm\s+me\s+for\b`),
	regexp.MustCompile(`(?s)(https?://\S+.*){4,}`), // four or more links
	regexp.MustCompile(`(?i)\b(telegram|whatsapp)\s+group\b`),
}

// maxRuneRun is the longest run of one repeated rune tolerated before the
// text counts as spam. RE2 has no backreferences, so runs are counted by hand.
const maxRuneRun = 9

// IsSpam reports whether text matches any known spam pattern.
func IsSpam(text string) bool {
	if hasLongRuneRun(text, maxRuneRun) {
		return true
	}
	for _, re := range spamPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func hasLongRuneRun(text string, max int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run > max {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
