package approval_decision

const (
	decisionApproved = "APPROVED"
	decisionRejected = "REJECTED"
)

type decisionEvent struct {
	EntityID string        `json:"entityId"`
	Decision string        `json:"decision"`
	Remarks  string        `json:"remarks"`
	Approver approverEvent `json:"approver"`
}

type approverEvent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	UserTypeID string `json:"userTypeId"`
}
