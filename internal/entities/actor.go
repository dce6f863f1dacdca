package entities

const (
	RoleProductOwner = "Product Owner"
	RoleAdmin        = "admin"

	// UserTypeApprover is the user-type code granting approval rights
	// regardless of role.
	UserTypeApprover = "UT001"
)

type Actor struct {
	ID         string
	Name       string
	Role       string
	UserTypeID string
}

func (a Actor) IsApprover() bool {
	return a.Role == RoleProductOwner || a.Role == RoleAdmin || a.UserTypeID == UserTypeApprover
}

// Action is a workflow operation an actor may perform on an entity.
type Action string

const (
	ActionView     Action = "view"
	ActionEdit     Action = "edit"
	ActionResubmit Action = "resubmit"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
)

func (a Action) String() string {
	return string(a)
}
