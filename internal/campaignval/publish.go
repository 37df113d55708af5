package campaignval

import (
	"fmt"
	"unicode/utf8"

	"github.com/izelavimelek/cliply/internal/apperr"
	"github.com/izelavimelek/cliply/internal/models"
)

// PublishCheck is the publishing-gate verdict. MissingPaymentSetup is the
// distinct "campaign is ready but billing is not" state the UI surfaces
// separately from an incomplete campaign.
type PublishCheck struct {
	CanPublish          bool                `json:"can_publish"`
	ValidationErrors    []apperr.FieldError `json:"validation_errors"`
	HasPaymentMethod    bool                `json:"has_payment_method"`
	MissingPaymentSetup bool                `json:"missing_payment_setup"`
}

// Validate runs the detailed per-field checks behind each section predicate
// and returns one message per missing field. A campaign with no validation
// errors satisfies IsComplete.
func Validate(c *models.Campaign) []apperr.FieldError {
	var errs []apperr.FieldError

	add := func(section, field, message string) {
		errs = append(errs, apperr.FieldError{Section: section, Field: field, Message: message})
	}

	// campaign-overview
	if utf8.RuneCountInString(c.Title) < minTitleLen {
		add(SectionOverview, "title", fmt.Sprintf("Title must be at least %d characters", minTitleLen))
	}
	if utf8.RuneCountInString(c.Description) < minDescriptionLen {
		add(SectionOverview, "description", fmt.Sprintf("Description must be at least %d characters", minDescriptionLen))
	}
	if c.Objective == "" {
		add(SectionOverview, "objective", "Objective is required")
	}
	if len(c.Platforms) == 0 {
		add(SectionOverview, "platforms", "Select at least one platform")
	}
	if c.Category == "" {
		add(SectionOverview, "category", "Category is required")
	}

	// budget-timeline
	if c.StartDate == nil {
		add(SectionBudgetTimeline, "start_date", "Start date is required")
	}
	if c.EndDate == nil {
		add(SectionBudgetTimeline, "end_date", "End date is required")
	}
	if c.SubmissionDeadline == nil {
		add(SectionBudgetTimeline, "submission_deadline", "Submission deadline is required")
	}
	if c.TotalBudget <= 0 {
		add(SectionBudgetTimeline, "total_budget", "Total budget must be greater than zero")
	}
	if c.RateType == "" {
		add(SectionBudgetTimeline, "rate_type", "Rate type is required")
	}

	// content-requirements
	if c.ClipsCount <= 0 && c.LongVideosCount <= 0 {
		add(SectionContentRequirements, "deliverables", "Set a quantity for clips or long videos")
	}
	if !c.LogoPlacement {
		add(SectionContentRequirements, "logo_placement", "Logo placement requirement must be set")
	}
	if !c.BrandMention {
		add(SectionContentRequirements, "brand_mention", "Brand mention requirement must be set")
	}
	if !c.CallToAction {
		add(SectionContentRequirements, "call_to_action", "Call to action requirement must be set")
	}
	if !c.HashtagRequirements {
		add(SectionContentRequirements, "hashtag_requirements", "Hashtag requirements must be set")
	}

	// audience-targeting
	if len(c.TargetGeography) == 0 {
		add(SectionAudienceTargeting, "target_geography", "Target geography is required")
	}
	if len(c.TargetLanguages) == 0 {
		add(SectionAudienceTargeting, "target_languages", "Target languages are required")
	}
	if c.TargetAgeMin == nil {
		add(SectionAudienceTargeting, "target_age_range.min", "Minimum target age is required")
	}
	if c.TargetAgeMax == nil {
		add(SectionAudienceTargeting, "target_age_range.max", "Maximum target age is required")
	}

	// agreements-compliance
	if !c.ContentGuidelinesAccepted {
		add(SectionAgreements, "content_guidelines_accepted", "Content guidelines must be accepted")
	}
	if !c.TermsAccepted {
		add(SectionAgreements, "terms_accepted", "Terms must be accepted")
	}

	// assets
	if len(c.AssetURLs) == 0 {
		add(SectionAssets, "asset_urls", "Upload at least one campaign asset")
	}

	return errs
}

// EvaluatePublish combines field validation with the payment-method check.
// CanPublish requires both; the payment check takes precedence even when
// validation passes.
func EvaluatePublish(c *models.Campaign, hasPaymentMethod bool) PublishCheck {
	errs := Validate(c)
	return PublishCheck{
		CanPublish:          len(errs) == 0 && hasPaymentMethod,
		ValidationErrors:    errs,
		HasPaymentMethod:    hasPaymentMethod,
		MissingPaymentSetup: len(errs) == 0 && !hasPaymentMethod,
	}
}
