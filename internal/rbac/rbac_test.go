package rbac

import (
	"testing"

	"github.com/izelavimelek/cliply/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{models.RoleBrand, PermManageCampaign, true},
		{models.RoleBrand, PermCreateAnnouncement, true},
		{models.RoleBrand, PermReviewSubmission, true},
		{models.RoleBrand, PermApplyToCampaign, false},
		{models.RoleBrand, PermViewPayouts, false},

		{models.RoleCreator, PermApplyToCampaign, true},
		{models.RoleCreator, PermCreateSubmission, true},
		{models.RoleCreator, PermViewPayouts, true},
		{models.RoleCreator, PermManageCampaign, false},
		{models.RoleCreator, PermCreateAnnouncement, false},

		// Admin role bypasses ownership, not role-category rules.
		{models.RoleAdmin, PermApproveCampaign, true},
		{models.RoleAdmin, PermCreateAnnouncement, false},
		{models.RoleAdmin, PermManageCampaign, false},

		{"unknown", PermManageCampaign, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestOwnershipExempt(t *testing.T) {
	if OwnershipExempt(nil) {
		t.Error("nil session should not be ownership exempt")
	}
	if OwnershipExempt(&Session{Role: models.RoleBrand}) {
		t.Error("non-admin session should not be ownership exempt")
	}
	if !OwnershipExempt(&Session{Role: models.RoleAdmin, IsAdmin: true}) {
		t.Error("admin session should be ownership exempt")
	}
}
