package campaignval

import (
	"testing"
	"time"

	"github.com/izelavimelek/cliply/internal/models"
)

func completeCampaign() *models.Campaign {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	deadline := end.AddDate(0, 0, 7)
	ageMin, ageMax := 18, 34

	return &models.Campaign{
		Title:       "Fall launch",
		Description: "Short-form clips for the fall product launch",
		Objective:   "awareness",
		Category:    "beauty",
		Platforms:   []string{models.PlatformTikTok, models.PlatformYouTube},

		TotalBudget:        5000,
		RateType:           models.RateTypePerThousand,
		RatePerThousand:    2.5,
		StartDate:          &start,
		EndDate:            &end,
		SubmissionDeadline: &deadline,

		ClipsCount:          3,
		LongVideosCount:     0,
		LogoPlacement:       true,
		BrandMention:        true,
		CallToAction:        true,
		HashtagRequirements: true,

		TargetGeography: []string{"US", "CA"},
		TargetLanguages: []string{"en"},
		TargetAgeMin:    &ageMin,
		TargetAgeMax:    &ageMax,

		ContentGuidelinesAccepted: true,
		TermsAccepted:             true,

		AssetURLs: []string{"https://cdn.example.com/brief.pdf"},
	}
}

func TestCompleteCampaignIsComplete(t *testing.T) {
	c := completeCampaign()
	cc := CompletionCount(c)
	if cc.Total != 6 {
		t.Fatalf("Total = %d, want 6", cc.Total)
	}
	if cc.Completed != cc.Total {
		t.Fatalf("Completed = %d, want %d (statuses: %v)", cc.Completed, cc.Total, SectionStatuses(c))
	}
	if !IsComplete(c) {
		t.Error("IsComplete = false for a fully filled campaign")
	}
	if errs := Validate(c); len(errs) != 0 {
		t.Errorf("Validate returned %d errors for a complete campaign: %v", len(errs), errs)
	}
}

// Flipping any single required field to empty/zero must break exactly its
// section and make the campaign incomplete.
func TestSingleFieldBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		section string
		mutate  func(*models.Campaign)
	}{
		{"short title", SectionOverview, func(c *models.Campaign) { c.Title = "Fall" }},
		{"short description", SectionOverview, func(c *models.Campaign) { c.Description = "Too short" }},
		{"no objective", SectionOverview, func(c *models.Campaign) { c.Objective = "" }},
		{"no platforms", SectionOverview, func(c *models.Campaign) { c.Platforms = nil }},
		{"no category", SectionOverview, func(c *models.Campaign) { c.Category = "" }},

		{"no start date", SectionBudgetTimeline, func(c *models.Campaign) { c.StartDate = nil }},
		{"no end date", SectionBudgetTimeline, func(c *models.Campaign) { c.EndDate = nil }},
		{"no deadline", SectionBudgetTimeline, func(c *models.Campaign) { c.SubmissionDeadline = nil }},
		{"zero budget", SectionBudgetTimeline, func(c *models.Campaign) { c.TotalBudget = 0 }},
		{"no rate type", SectionBudgetTimeline, func(c *models.Campaign) { c.RateType = "" }},

		{"no deliverables", SectionContentRequirements, func(c *models.Campaign) { c.ClipsCount = 0; c.LongVideosCount = 0 }},
		{"no logo placement", SectionContentRequirements, func(c *models.Campaign) { c.LogoPlacement = false }},
		{"no brand mention", SectionContentRequirements, func(c *models.Campaign) { c.BrandMention = false }},
		{"no call to action", SectionContentRequirements, func(c *models.Campaign) { c.CallToAction = false }},
		{"no hashtag requirements", SectionContentRequirements, func(c *models.Campaign) { c.HashtagRequirements = false }},

		{"no geography", SectionAudienceTargeting, func(c *models.Campaign) { c.TargetGeography = nil }},
		{"no languages", SectionAudienceTargeting, func(c *models.Campaign) { c.TargetLanguages = nil }},
		{"no age min", SectionAudienceTargeting, func(c *models.Campaign) { c.TargetAgeMin = nil }},
		{"no age max", SectionAudienceTargeting, func(c *models.Campaign) { c.TargetAgeMax = nil }},

		{"guidelines not accepted", SectionAgreements, func(c *models.Campaign) { c.ContentGuidelinesAccepted = false }},
		{"terms not accepted", SectionAgreements, func(c *models.Campaign) { c.TermsAccepted = false }},

		{"no assets", SectionAssets, func(c *models.Campaign) { c.AssetURLs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := completeCampaign()
			tt.mutate(c)

			if SectionComplete(c, tt.section) {
				t.Errorf("section %q still complete after mutation", tt.section)
			}
			if IsComplete(c) {
				t.Error("IsComplete = true after mutation")
			}

			cc := CompletionCount(c)
			if cc.Completed != cc.Total-1 {
				t.Errorf("Completed = %d, want %d (only %q should be broken)", cc.Completed, cc.Total-1, tt.section)
			}

			// The detailed checks must name the broken section.
			found := false
			for _, e := range Validate(c) {
				if e.Section == tt.section {
					found = true
				} else {
					t.Errorf("unexpected validation error in section %q: %+v", e.Section, e)
				}
			}
			if !found {
				t.Errorf("Validate produced no error for section %q", tt.section)
			}
		})
	}
}

// Length minimums are in characters. A four-rune multibyte title is under
// the minimum even though it is well over five bytes.
func TestLengthChecksCountCharacters(t *testing.T) {
	c := completeCampaign()
	c.Title = "日本限定"
	if SectionComplete(c, SectionOverview) {
		t.Error("four-character title passed the five-character minimum")
	}
	if got := Validate(c); len(got) != 1 || got[0].Field != "title" {
		t.Errorf("Validate = %+v, want one title error", got)
	}

	c.Title = "日本限定版"
	if !SectionComplete(c, SectionOverview) {
		t.Error("five-character title rejected")
	}

	c.Description = "九文字の説明九文字"
	if SectionComplete(c, SectionOverview) {
		t.Error("nine-character description passed the ten-character minimum")
	}
	c.Description = "十文字ある説明文です"
	if !SectionComplete(c, SectionOverview) {
		t.Error("ten-character description rejected")
	}
}

func TestLongVideosAloneSatisfyDeliverables(t *testing.T) {
	c := completeCampaign()
	c.ClipsCount = 0
	c.LongVideosCount = 2
	if !SectionComplete(c, SectionContentRequirements) {
		t.Error("long videos alone should satisfy the deliverables check")
	}
}

func TestCompletionBoundsOnEmptyCampaign(t *testing.T) {
	cc := CompletionCount(&models.Campaign{})
	if cc.Total != 6 {
		t.Errorf("Total = %d, want 6", cc.Total)
	}
	if cc.Completed != 0 {
		t.Errorf("Completed = %d for empty campaign, want 0", cc.Completed)
	}
}

func TestUnknownSectionNeverComplete(t *testing.T) {
	if SectionComplete(completeCampaign(), "made-up-section") {
		t.Error("unknown section reported complete")
	}
}
