package scoring

import (
	"strings"
	"testing"

	"github.com/matchday-forum/matchday/models"
)

func validSubmission() Submission {
	return Submission{
		Title:    "Best starting eleven this season",
		Content:  strings.Repeat("solid content ", 10),
		Category: models.CategoryGeneral,
		UserID:   42,
	}
}

func TestValidateAccepted(t *testing.T) {
	res := Validate(validSubmission())
	if !res.IsValid {
		t.Fatalf("expected valid submission, errors: %v", res.Errors)
	}
	if res.Quality != 100 {
		t.Fatalf("expected quality 100, got %d", res.Quality)
	}
}

func TestValidateLengthBounds(t *testing.T) {
	sub := validSubmission()
	sub.Title = strings.Repeat("t", 200)
	sub.Content = strings.Repeat("c", 5000)
	if res := Validate(sub); !res.IsValid {
		t.Fatalf("boundary lengths should pass, errors: %v", res.Errors)
	}

	sub.Title = strings.Repeat("t", 201)
	if res := Validate(sub); res.IsValid {
		t.Fatal("201-char title should fail")
	}

	sub.Title = strings.Repeat("t", 200)
	sub.Content = strings.Repeat("c", 5001)
	if res := Validate(sub); res.IsValid {
		t.Fatal("5001-char content should fail")
	}
}

func TestValidateMissingFields(t *testing.T) {
	res := Validate(Submission{})
	if res.IsValid {
		t.Fatal("empty submission should fail")
	}
	// title, content, category, user all missing: 25+25+20+30
	if res.Quality != 0 {
		t.Fatalf("expected quality 0, got %d", res.Quality)
	}
	if len(res.Errors) != 4 {
		t.Fatalf("expected 4 errors, got %v", res.Errors)
	}
}

func TestValidateShortFieldsWarn(t *testing.T) {
	sub := validSubmission()
	sub.Title = "hey"
	sub.Content = "short"
	res := Validate(sub)
	if !res.IsValid {
		t.Fatalf("short fields should only warn, errors: %v", res.Errors)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}
	if res.Quality != 70 {
		t.Fatalf("expected quality 70, got %d", res.Quality)
	}
}

func TestValidateSpam(t *testing.T) {
	sub := validSubmission()
	sub.Content = "free coins for everyone, click here now"
	res := Validate(sub)
	if res.IsValid {
		t.Fatal("spam content should fail")
	}
}

func TestValidatePollOptions(t *testing.T) {
	sub := validSubmission()
	sub.Poll = &models.PollSpec{Question: "agree?", Options: []string{"Yes", "yes ", "No"}}
	res := Validate(sub)
	if !res.IsValid {
		t.Fatalf("case-insensitive dedup should leave 2 options, errors: %v", res.Errors)
	}
	if opts := sub.Poll.NormalizedOptions(); len(opts) != 2 {
		t.Fatalf("expected 2 normalized options, got %v", opts)
	}

	sub.Poll = &models.PollSpec{Question: "agree?", Options: []string{"A"}}
	if res := Validate(sub); res.IsValid {
		t.Fatal("single-option poll should fail")
	}

	sub.Poll = &models.PollSpec{Question: "agree?", Options: []string{"a", " A", "a  "}}
	if res := Validate(sub); res.IsValid {
		t.Fatal("options collapsing to one should fail")
	}
}

func TestValidatePollDuration(t *testing.T) {
	sub := validSubmission()
	sub.Poll = &models.PollSpec{
		Options:  []string{"yes", "no"},
		Settings: models.PollSettings{HasTimeLimit: true, DurationHours: 169},
	}
	if res := Validate(sub); res.IsValid {
		t.Fatal("poll longer than a week should fail")
	}

	sub.Poll.Settings.DurationHours = 168
	if res := Validate(sub); !res.IsValid {
		t.Fatalf("168h poll should pass, errors: %v", res.Errors)
	}
}

func TestValidateMedia(t *testing.T) {
	sub := validSubmission()
	sub.Media = []string{"https://cdn.example.com/a.jpg", "not-a-url"}
	if res := Validate(sub); res.IsValid {
		t.Fatal("malformed media entry should fail")
	}

	sub.Media = nil
	for i := 0; i < 11; i++ {
		sub.Media = append(sub.Media, "https://cdn.example.com/img.jpg")
	}
	res := Validate(sub)
	if !res.IsValid {
		t.Fatalf("11 images should only warn, errors: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected image-count warning, got %v", res.Warnings)
	}
}

func TestValidateRateLimited(t *testing.T) {
	sub := validSubmission()
	sub.RateLimited = true
	res := Validate(sub)
	if res.IsValid {
		t.Fatal("rate-limited submission should fail")
	}
	if res.Quality != 50 {
		t.Fatalf("expected quality 50, got %d", res.Quality)
	}
}
