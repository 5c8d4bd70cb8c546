package scoring

import (
	"math"

	"github.com/matchday-forum/matchday/models"
)

// Sub-score weights. They sum to 1.0 so the weighted total stays in [0,100].
const (
	weightLength     = 0.20
	weightQuality    = 0.25
	weightMedia      = 0.15
	weightPoll       = 0.15
	weightCategory   = 0.10
	weightEngagement = 0.10
	weightRecency    = 0.05
)

const (
	lengthRampWords    = 200 // linear ramp caps here
	perImageBonus      = 15.0
	imageBonusCap      = 60.0
	gifBonus           = 20.0
	spamQualityHit     = 40.0
	engagementBaseline = 50.0 // placeholder until behavioural signals exist
	recencyBonus       = 100.0 // submissions are scored at creation time
)

// categoryPopularity weights hotness by where the community actually hangs
// out. Unknown categories fall back to 0.5.
var categoryPopularity = map[string]float64{
	models.CategoryUltimateTeam: 0.95,
	models.CategoryTrading:      0.85,
	models.CategoryCareerMode:   0.75,
	models.CategoryProClubs:     0.70,
	models.CategoryEsports:      0.65,
	models.CategoryNews:         0.60,
	models.CategoryGeneral:      0.55,
}

// categoryMultipliers boost engagement potential for high-traffic categories.
// Values never drop below 1.0.
var categoryMultipliers = map[string]float64{
	models.CategoryUltimateTeam: 1.20,
	models.CategoryTrading:      1.15,
	models.CategoryCareerMode:   1.10,
	models.CategoryEsports:      1.05,
}

// CategoryPopularity returns the popularity weight in [0,1] for a category.
func CategoryPopularity(category string) float64 {
	if v, ok := categoryPopularity[category]; ok {
		return v
	}
	return 0.5
}

// CategoryMultiplier returns the engagement multiplier for a category, never
// below 1.0.
func CategoryMultiplier(category string) float64 {
	if v, ok := categoryMultipliers[category]; ok {
		return v
	}
	return 1.0
}

// Score computes the 0-100 hotness score for a candidate post. The function
// is pure: identical inputs always produce the identical integer.
func Score(text string, media []string, gifURL string, poll *models.PollSpec, category string) int {
	stats := Analyze(text)

	total := clamp100(lengthScore(stats))*weightLength +
		clamp100(qualityScore(text, stats))*weightQuality +
		clamp100(mediaScore(media, gifURL))*weightMedia +
		clamp100(pollScore(poll))*weightPoll +
		clamp100(CategoryPopularity(category)*100)*weightCategory +
		clamp100(engagementBaseline)*weightEngagement +
		clamp100(recencyBonus)*weightRecency

	return int(math.Round(clamp100(total)))
}

// EngagementPotential derives a secondary 0-100 estimate of how much
// interaction a post should attract: 60% of hotness plus small additive
// bonuses, scaled by the category multiplier.
func EngagementPotential(text string, media []string, gifURL string, poll *models.PollSpec, category string) int {
	stats := Analyze(text)
	base := float64(Score(text, media, gifURL, poll, category)) * 0.6

	if stats.Complexity == ComplexityHigh {
		base += 10
	}
	if stats.HasHashtags {
		base += 5
	}
	if stats.HasMentions {
		base += 5
	}

	return int(math.Round(clamp100(base * CategoryMultiplier(category))))
}

func lengthScore(stats ContentStats) float64 {
	if stats.WordCount >= lengthRampWords {
		return 100
	}
	return float64(stats.WordCount) / lengthRampWords * 100
}

func qualityScore(text string, stats ContentStats) float64 {
	score := 0.0
	if stats.WordCount >= 50 {
		score += 20
	}
	if stats.ParagraphCount >= 2 {
		score += 15
	}
	if stats.HasEmoji {
		score += 10
	}
	if stats.HasHashtags {
		score += 10
	}
	switch stats.Complexity {
	case ComplexityHigh:
		score += 25
	case ComplexityMedium:
		score += 15
	}
	if IsSpam(text) {
		score -= spamQualityHit
	}
	return score
}

func mediaScore(media []string, gifURL string) float64 {
	score := float64(len(media)) * perImageBonus
	if score > imageBonusCap {
		score = imageBonusCap
	}
	if gifURL != "" {
		score += gifBonus
	}
	return score
}

func pollScore(poll *models.PollSpec) float64 {
	if poll == nil {
		return 0
	}
	score := 30.0
	score += float64(len(poll.NormalizedOptions())) * 5
	if poll.Settings.Boosted {
		score += 10
	}
	if poll.Settings.HasTimeLimit {
		score += 5
	}
	if poll.Settings.AllowMultipleVotes {
		score += 5
	}
	if poll.Settings.RequireComment {
		score += 5
	}
	return score
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
