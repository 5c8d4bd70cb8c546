package models

import "strings"

// Poll option bounds after normalization.
const (
	PollMinOptions       = 2
	PollMaxOptions       = 10
	PollMaxDurationHours = 168
	PollMinDurationHours = 1
)

// PollSettings bundles behavioural flags for a poll.
type PollSettings struct {
	Anonymous          bool `json:"anonymous"`
	Boosted            bool `json:"boosted"`
	AllowMultipleVotes bool `json:"allow_multiple_votes"`
	HasTimeLimit       bool `json:"has_time_limit"`
	DurationHours      int  `json:"duration_hours"`
	RequireComment     bool `json:"require_comment"`
}

// PollSpec describes a poll attached to a post submission. It is transient on
// the wire and serialized as JSON onto the post row when accepted.
type PollSpec struct {
	Question string       `json:"question"`
	Options  []string     `json:"options"`
	Settings PollSettings `json:"settings"`
}

// NormalizedOptions returns the poll options trimmed and deduplicated
// case-insensitively, preserving first-seen order and casing.
func (p *PollSpec) NormalizedOptions() []string {
	seen := make(map[string]bool, len(p.Options))
	out := make([]string, 0, len(p.Options))
	for _, opt := range p.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
