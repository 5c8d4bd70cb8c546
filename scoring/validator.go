package scoring

import (
	"fmt"
	"strings"

	"github.com/matchday-forum/matchday/models"
)

// Length bounds for submissions.
const (
	TitleMinLen   = 5
	TitleMaxLen   = 200
	ContentMinLen = 10
	ContentMaxLen = 5000
	MaxImages     = 10
)

// Submission is a transient candidate post assembled by the caller. RateLimited
// reflects the advisory submission limiter's verdict at validation time.
type Submission struct {
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Category    string           `json:"category"`
	Media       []string         `json:"media"`
	GifURL      string           `json:"gif_url"`
	Poll        *models.PollSpec `json:"poll"`
	UserID      uint             `json:"user_id"`
	RateLimited bool             `json:"-"`
}

// ValidationResult aggregates the verdict for one submission. Errors block
// the submission; warnings only lower the quality score.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Quality  int      `json:"quality"`
}

// Fixed quality penalties per rule, subtracted from a 100 baseline.
const (
	penaltyMissingTitle    = 25
	penaltyTitleLength     = 15
	penaltyMissingContent  = 25
	penaltyContentLength   = 15
	penaltyMissingCategory = 20
	penaltyMissingUser     = 30
	penaltySpam            = 30
	penaltyPollOptions     = 15
	penaltyPollTooMany     = 5
	penaltyTooManyImages   = 5
	penaltyBadImage        = 10
	penaltyRateLimited     = 50
)

// Validate checks a candidate submission against every rule and aggregates a
// pass/fail verdict with a 0-100 quality score.
func Validate(sub Submission) ValidationResult {
	var errs, warns []string
	penalty := 0

	title := strings.TrimSpace(sub.Title)
	switch {
	case title == "":
		errs = append(errs, "title is required")
		penalty += penaltyMissingTitle
	case len([]rune(title)) > TitleMaxLen:
		errs = append(errs, fmt.Sprintf("title exceeds %d characters", TitleMaxLen))
		penalty += penaltyTitleLength
	case len([]rune(title)) < TitleMinLen:
		warns = append(warns, fmt.Sprintf("title shorter than %d characters", TitleMinLen))
		penalty += penaltyTitleLength
	}

	content := strings.TrimSpace(sub.Content)
	switch {
	case content == "":
		errs = append(errs, "content is required")
		penalty += penaltyMissingContent
	case len([]rune(content)) > ContentMaxLen:
		errs = append(errs, fmt.Sprintf("content exceeds %d characters", ContentMaxLen))
		penalty += penaltyContentLength
	case len([]rune(content)) < ContentMinLen:
		warns = append(warns, fmt.Sprintf("content shorter than %d characters", ContentMinLen))
		penalty += penaltyContentLength
	}

	if sub.Category == "" {
		errs = append(errs, "category is required")
		penalty += penaltyMissingCategory
	} else if !models.IsValidCategory(sub.Category) {
		errs = append(errs, "unknown category")
		penalty += penaltyMissingCategory
	}

	if sub.UserID == 0 {
		errs = append(errs, "authenticated user required")
		penalty += penaltyMissingUser
	}

	if title != "" && IsSpam(title) {
		errs = append(errs, "title matches spam patterns")
		penalty += penaltySpam
	}
	if content != "" && IsSpam(content) {
		errs = append(errs, "content matches spam patterns")
		penalty += penaltySpam
	}

	if sub.Poll != nil {
		opts := sub.Poll.NormalizedOptions()
		if len(opts) < models.PollMinOptions {
			errs = append(errs, fmt.Sprintf("poll needs at least %d distinct options", models.PollMinOptions))
			penalty += penaltyPollOptions
		}
		if len(opts) > models.PollMaxOptions {
			warns = append(warns, fmt.Sprintf("poll has more than %d options", models.PollMaxOptions))
			penalty += penaltyPollTooMany
		}
		if sub.Poll.Settings.HasTimeLimit {
			h := sub.Poll.Settings.DurationHours
			if h < models.PollMinDurationHours || h > models.PollMaxDurationHours {
				errs = append(errs, fmt.Sprintf("poll duration must be between %d and %d hours",
					models.PollMinDurationHours, models.PollMaxDurationHours))
				penalty += penaltyPollOptions
			}
		}
	}

	if len(sub.Media) > MaxImages {
		warns = append(warns, fmt.Sprintf("more than %d images attached", MaxImages))
		penalty += penaltyTooManyImages
	}
	for _, m := range sub.Media {
		if strings.TrimSpace(m) == "" || !strings.Contains(m, "://") {
			errs = append(errs, "malformed media entry")
			penalty += penaltyBadImage
			break
		}
	}

	if sub.RateLimited {
		errs = append(errs, "submission rate limit reached")
		penalty += penaltyRateLimited
	}

	quality := 100 - penalty
	if quality < 0 {
		quality = 0
	}

	return ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
		Quality:  quality,
	}
}
