package models

import "testing"

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{CampaignStatusDraft, CampaignStatusPendingApproval, true},
		{CampaignStatusPendingApproval, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusPaused, true},
		{CampaignStatusPaused, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},
		{CampaignStatusPaused, CampaignStatusCompleted, true},

		// Admin rejection returns the campaign to draft
		{CampaignStatusPendingApproval, CampaignStatusDraft, true},

		// Invalid transitions
		{CampaignStatusDraft, CampaignStatusActive, false},
		{CampaignStatusDraft, CampaignStatusPaused, false},
		{CampaignStatusDraft, CampaignStatusCompleted, false},
		{CampaignStatusActive, CampaignStatusDraft, false},
		{CampaignStatusPaused, CampaignStatusDraft, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
		{CampaignStatusCompleted, CampaignStatusDraft, false},
		{"nonexistent", CampaignStatusActive, false},
		{CampaignStatusDraft, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllCampaignStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		CampaignStatusDraft, CampaignStatusPendingApproval, CampaignStatusActive,
		CampaignStatusPaused, CampaignStatusCompleted,
	}

	for _, status := range allStatuses {
		if _, ok := ValidCampaignTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidCampaignTransitions map", status)
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if transitions := ValidCampaignTransitions[CampaignStatusCompleted]; len(transitions) != 0 {
		t.Errorf("completed should have no transitions, got %v", transitions)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleCreator, RoleBrand, RoleAdmin} {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false, want true", role)
		}
	}
	if IsValidRole("moderator") {
		t.Error(`IsValidRole("moderator") = true, want false`)
	}
}

func TestIsValidPlatform(t *testing.T) {
	for _, p := range []string{PlatformGoogle, PlatformTikTok, PlatformYouTube, PlatformInstagram} {
		if !IsValidPlatform(p) {
			t.Errorf("IsValidPlatform(%q) = false, want true", p)
		}
	}
	if IsValidPlatform("myspace") {
		t.Error(`IsValidPlatform("myspace") = true, want false`)
	}
}
