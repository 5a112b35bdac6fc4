// Package policy centralizes the authorization rules that were previously
// scattered across route handlers. Handlers and usecases ask a single
// evaluator whether a viewer may perform an action on a resource.
package policy

import (
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/entity"
)

// Action names one protected operation.
type Action string

const (
	// ActionListUsers covers browsing and searching account records.
	ActionListUsers Action = "users.list"
	// ActionGrantRole covers promoting an account to admin.
	ActionGrantRole Action = "users.grant_role"
	// ActionApprovePremium covers approving a pending premium request.
	ActionApprovePremium Action = "users.approve_premium"
	// ActionListPayments covers browsing all purchase records.
	ActionListPayments Action = "payments.list"
	// ActionApprovePayment covers manually approving a pending purchase.
	ActionApprovePayment Action = "payments.approve"
	// ActionViewStats covers the admin statistics dashboard.
	ActionViewStats Action = "stats.view"
	// ActionMutateOwn covers writes to a resource the viewer owns.
	ActionMutateOwn Action = "resource.mutate_own"
)

// Viewer is the authenticated identity a decision is made for. Role and
// Premium come from a fresh read of the viewer's user record, not from
// token claims.
type Viewer struct {
	Email   string
	Role    entity.Role
	Premium entity.PremiumStatus
}

// ViewerFromUser builds a Viewer from an account record.
func ViewerFromUser(u *entity.User) Viewer {
	return Viewer{Email: u.Email, Role: u.Role, Premium: u.Premium}
}

// Resource identifies what the action targets. OwnerEmail is empty for
// platform-wide resources.
type Resource struct {
	OwnerEmail string
}

// rule decides one action. Rules see the full viewer and resource so each
// stays a single expression.
type rule func(v Viewer, r Resource) bool

func adminOnly(v Viewer, _ Resource) bool {
	return v.Role == entity.RoleAdmin
}

func ownerOrAdmin(v Viewer, r Resource) bool {
	return v.Role == entity.RoleAdmin || (r.OwnerEmail != "" && v.Email == r.OwnerEmail)
}

var rules = map[Action]rule{
	ActionListUsers:      adminOnly,
	ActionGrantRole:      adminOnly,
	ActionApprovePremium: adminOnly,
	ActionListPayments:   adminOnly,
	ActionApprovePayment: adminOnly,
	ActionViewStats:      adminOnly,
	ActionMutateOwn:      ownerOrAdmin,
}

// Allow evaluates the rule for the action and returns ErrForbidden when the
// viewer is denied. Unknown actions are denied.
func Allow(v Viewer, r Resource, a Action) error {
	decide, ok := rules[a]
	if !ok || !decide(v, r) {
		return domainerrors.ErrForbidden
	}

	return nil
}
