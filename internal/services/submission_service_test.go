package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/izelavimelek/cliply/internal/models"
)

func TestComputeEarnings(t *testing.T) {
	tests := []struct {
		name     string
		rateType string
		rate     float64
		budget   float64
		views    int64
		want     float64
	}{
		{"per thousand views", models.RateTypePerThousand, 5, 1000, 20000, 100},
		{"fractional thousand", models.RateTypePerThousand, 5, 1000, 1500, 7.5},
		{"zero views", models.RateTypePerThousand, 5, 1000, 0, 0},
		{"capped at budget", models.RateTypePerThousand, 5, 50, 20000, 50},
		{"fixed rate pays nothing per view", models.RateTypeFixed, 5, 1000, 20000, 0},
		{"zero rate", models.RateTypePerThousand, 0, 1000, 20000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &models.Campaign{
				RateType:        tt.rateType,
				RatePerThousand: tt.rate,
				TotalBudget:     tt.budget,
			}
			sub := &models.Submission{ViewCount: tt.views}
			assert.Equal(t, tt.want, computeEarnings(campaign, sub))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"has space@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, validEmail(tt.email))
		})
	}
}
