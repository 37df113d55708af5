package campaignval

import (
	"testing"

	"github.com/izelavimelek/cliply/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluatePublishAllGreen(t *testing.T) {
	check := EvaluatePublish(completeCampaign(), true)

	assert.True(t, check.CanPublish)
	assert.Empty(t, check.ValidationErrors)
	assert.True(t, check.HasPaymentMethod)
	assert.False(t, check.MissingPaymentSetup)
}

// Payment gating takes precedence: a fully valid campaign still cannot
// publish without a payment method.
func TestEvaluatePublishPaymentPrecedence(t *testing.T) {
	check := EvaluatePublish(completeCampaign(), false)

	assert.False(t, check.CanPublish)
	assert.Empty(t, check.ValidationErrors)
	assert.False(t, check.HasPaymentMethod)
	assert.True(t, check.MissingPaymentSetup, "valid campaign without billing is the missing-payment-setup state")
}

func TestEvaluatePublishIncompleteCampaign(t *testing.T) {
	c := completeCampaign()
	c.Title = ""

	check := EvaluatePublish(c, true)

	assert.False(t, check.CanPublish)
	assert.NotEmpty(t, check.ValidationErrors)
	assert.False(t, check.MissingPaymentSetup, "incomplete campaign is not the missing-payment-setup state")
}

func TestEvaluatePublishIncompleteAndNoPayment(t *testing.T) {
	check := EvaluatePublish(&models.Campaign{}, false)

	assert.False(t, check.CanPublish)
	assert.NotEmpty(t, check.ValidationErrors)
	assert.False(t, check.MissingPaymentSetup)
}

func TestValidateErrorCountOnEmptyCampaign(t *testing.T) {
	errs := Validate(&models.Campaign{})

	// Every required field of every section should be reported.
	sections := map[string]int{}
	for _, e := range errs {
		sections[e.Section]++
	}
	for _, s := range Sections {
		assert.NotZero(t, sections[s], "section %s has no errors", s)
	}
}
