package services

import (
	"fmt"

	"idea-management-api/models"
)

// Operation identifies a permission-gated action.
type Operation string

const (
	OpCreateIdea     Operation = "idea.create"
	OpListAllIdeas   Operation = "idea.list_all"
	OpChangeStatus   Operation = "idea.change_status"
	OpViewMetrics    Operation = "metrics.view"
	OpCommentAnyIdea Operation = "comment.any_idea"
)

// capabilities is the closed role -> allowed operations table. Ownership
// and lifecycle-state checks are separate; this covers role gating only.
var capabilities = map[string]map[Operation]bool{
	models.RoleTeamMember: {
		OpCreateIdea: true,
	},
	models.RoleTeamLead: {
		OpListAllIdeas:   true,
		OpChangeStatus:   true,
		OpViewMetrics:    true,
		OpCommentAnyIdea: true,
	},
}

// RoleAllows reports whether the named role may perform op.
func RoleAllows(roleName string, op Operation) bool {
	return capabilities[roleName][op]
}

// CanModifyIdea decides whether userID may edit or delete the idea.
// A decided idea is immutable for everyone; otherwise only the owner may.
func CanModifyIdea(userID int, idea *models.Idea) error {
	if idea.Decided() {
		return fmt.Errorf("%w: idea already decided", ErrInvalidState)
	}
	if idea.UserID != userID {
		return fmt.Errorf("%w: not the idea owner", ErrForbidden)
	}
	return nil
}

// CanAccessComments decides whether the requester may read or add comments
// on the idea: the owner and team leads may, nobody else.
func CanAccessComments(userID int, roleName string, idea *models.Idea) error {
	if idea.UserID == userID || roleName == models.RoleTeamLead {
		return nil
	}
	return fmt.Errorf("%w: comments are visible to the idea owner and team leads only", ErrForbidden)
}
