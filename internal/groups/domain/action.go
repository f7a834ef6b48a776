package domain

// Action is a group-scoped operation checked by the authorization guard.
type Action string

const (
	ActionView           Action = "view"
	ActionEdit           Action = "edit"
	ActionDelete         Action = "delete"
	ActionSendInvite     Action = "sendInvite"
	ActionResendInvite   Action = "resendInvite"
	ActionRegenerateCode Action = "regenerateCode"
	ActionToggleAdmin    Action = "toggleAdmin"
	ActionRemoveMember   Action = "removeMember"
	ActionLeave          Action = "leave"
)

// RequiresAdmin reports whether only admins may perform a.
func (a Action) RequiresAdmin() bool {
	switch a {
	case ActionEdit, ActionDelete, ActionSendInvite, ActionResendInvite,
		ActionRegenerateCode, ActionToggleAdmin, ActionRemoveMember:
		return true
	default:
		return false
	}
}

// TargetsMember reports whether a acts on another member's membership.
func (a Action) TargetsMember() bool {
	return a == ActionToggleAdmin || a == ActionRemoveMember
}
