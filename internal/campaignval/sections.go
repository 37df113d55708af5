// Package campaignval contains the pure validation logic behind the
// campaign setup wizard: per-section completion predicates, the aggregate
// completion count, and the detailed field checks backing the publishing
// gate. Everything here is side-effect-free so the UI can re-evaluate it on
// every field change.
package campaignval

import (
	"unicode/utf8"

	"github.com/izelavimelek/cliply/internal/models"
)

// Section identifiers, one per wizard step.
const (
	SectionOverview            = "campaign-overview"
	SectionBudgetTimeline      = "budget-timeline"
	SectionContentRequirements = "content-requirements"
	SectionAudienceTargeting   = "audience-targeting"
	SectionAgreements          = "agreements-compliance"
	SectionAssets              = "assets"
)

// Sections lists all sections in wizard order.
var Sections = []string{
	SectionOverview,
	SectionBudgetTimeline,
	SectionContentRequirements,
	SectionAudienceTargeting,
	SectionAgreements,
	SectionAssets,
}

const (
	minTitleLen       = 5
	minDescriptionLen = 10
)

type Completion struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Length minimums count characters, not bytes, so multibyte titles are
// measured the same way the UI counts them.
func overviewComplete(c *models.Campaign) bool {
	return utf8.RuneCountInString(c.Title) >= minTitleLen &&
		utf8.RuneCountInString(c.Description) >= minDescriptionLen &&
		c.Objective != "" &&
		len(c.Platforms) > 0 &&
		c.Category != ""
}

func budgetTimelineComplete(c *models.Campaign) bool {
	return c.StartDate != nil &&
		c.EndDate != nil &&
		c.SubmissionDeadline != nil &&
		c.TotalBudget > 0 &&
		c.RateType != ""
}

func contentRequirementsComplete(c *models.Campaign) bool {
	return (c.ClipsCount > 0 || c.LongVideosCount > 0) &&
		c.LogoPlacement && c.BrandMention && c.CallToAction && c.HashtagRequirements
}

func audienceTargetingComplete(c *models.Campaign) bool {
	return len(c.TargetGeography) > 0 &&
		len(c.TargetLanguages) > 0 &&
		c.TargetAgeMin != nil &&
		c.TargetAgeMax != nil
}

func agreementsComplete(c *models.Campaign) bool {
	return c.ContentGuidelinesAccepted && c.TermsAccepted
}

func assetsComplete(c *models.Campaign) bool {
	return len(c.AssetURLs) > 0
}

var sectionPredicates = map[string]func(*models.Campaign) bool{
	SectionOverview:            overviewComplete,
	SectionBudgetTimeline:      budgetTimelineComplete,
	SectionContentRequirements: contentRequirementsComplete,
	SectionAudienceTargeting:   audienceTargetingComplete,
	SectionAgreements:          agreementsComplete,
	SectionAssets:              assetsComplete,
}

// SectionComplete reports whether a single wizard section is complete.
// Unknown sections are never complete.
func SectionComplete(c *models.Campaign, section string) bool {
	pred, ok := sectionPredicates[section]
	if !ok {
		return false
	}
	return pred(c)
}

// SectionStatuses returns the per-section completion flags shown as wizard
// progress.
func SectionStatuses(c *models.Campaign) map[string]bool {
	statuses := make(map[string]bool, len(Sections))
	for _, s := range Sections {
		statuses[s] = SectionComplete(c, s)
	}
	return statuses
}

// CompletionCount returns how many sections are complete out of the fixed
// total.
func CompletionCount(c *models.Campaign) Completion {
	completed := 0
	for _, s := range Sections {
		if SectionComplete(c, s) {
			completed++
		}
	}
	return Completion{Completed: completed, Total: len(Sections)}
}

// IsComplete reports whether every section is complete.
func IsComplete(c *models.Campaign) bool {
	cc := CompletionCount(c)
	return cc.Completed == cc.Total
}
