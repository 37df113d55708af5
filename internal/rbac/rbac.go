package rbac

import (
	"github.com/google/uuid"

	"github.com/izelavimelek/cliply/internal/models"
)

// Session is the decoded identity carried through a request.
type Session struct {
	UserID  uuid.UUID
	Email   string
	Role    string
	IsAdmin bool
}

// Permission constants
const (
	PermManageBrand        = "manage_brand"
	PermManageCampaign     = "manage_campaign"
	PermPublishCampaign    = "publish_campaign"
	PermCreateAnnouncement = "create_announcement"
	PermApplyToCampaign    = "apply_to_campaign"
	PermCreateSubmission   = "create_submission"
	PermReviewSubmission   = "review_submission"
	PermViewPayouts        = "view_payouts"
	PermLinkSocialAccount  = "link_social_account"
	PermApproveCampaign    = "approve_campaign"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	models.RoleBrand: {
		PermManageBrand, PermManageCampaign, PermPublishCampaign,
		PermCreateAnnouncement, PermReviewSubmission, PermLinkSocialAccount,
	},
	models.RoleCreator: {
		PermApplyToCampaign, PermCreateSubmission, PermViewPayouts,
		PermLinkSocialAccount,
	},
	models.RoleAdmin: {
		PermApproveCampaign,
	},
}

// HasPermission checks if a role has a specific permission. Role-category
// business rules apply to admins too: an admin cannot, say, create
// announcements, because only brands may.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}

// OwnershipExempt reports whether the session may act on resources it does
// not own. Admin sessions bypass ownership checks only.
func OwnershipExempt(s *Session) bool {
	return s != nil && s.IsAdmin
}
