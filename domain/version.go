package domain

import (
	"signoff/domain/state"

	"github.com/fundwit/go-commons/types"
)

type ProjectVersion struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	ProjectID types.ID `json:"projectId" gorm:"unique_index:project_version_unique" sql:"type:BIGINT UNSIGNED NOT NULL"`
	Number    int      `json:"number" gorm:"unique_index:project_version_unique" sql:"type:INT UNSIGNED NOT NULL"`
	Status    string   `json:"status"`

	ProjectName  string          `json:"projectName"`
	StartDate    types.Timestamp `json:"startDate" sql:"type:DATETIME(6) NOT NULL"`
	EndDate      types.Timestamp `json:"endDate" sql:"type:DATETIME(6) NOT NULL"`
	BusinessUnit string          `json:"businessUnit"`
	ReviewerID   types.ID        `json:"reviewerId"`
	Creator      types.ID        `json:"creator"`

	SubmitTime  types.Timestamp `json:"submitTime" sql:"type:DATETIME(6)"`
	ApproveTime types.Timestamp `json:"approveTime" sql:"type:DATETIME(6)"`
	RejectTime  types.Timestamp `json:"rejectTime" sql:"type:DATETIME(6)"`

	RejectionComment string `json:"rejectionComment"`

	// Active marks the single authoritative version of a project. It must
	// agree with Project.ActiveVersionID at all times.
	Active bool `json:"active"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type VersionUpdating struct {
	ProjectName  string          `json:"projectName" binding:"required,lte=120"`
	StartDate    types.Timestamp `json:"startDate" binding:"required"`
	EndDate      types.Timestamp `json:"endDate" binding:"required"`
	BusinessUnit string          `json:"businessUnit" binding:"required,lte=60"`
	ReviewerID   types.ID        `json:"reviewerId" binding:"required"`
}

var (
	StateDraft    = state.State{Name: "draft", Category: state.Editable}
	StatePending  = state.State{Name: "pending", Category: state.InReview}
	StateApproved = state.State{Name: "approved", Category: state.Settled}
	StateRejected = state.State{Name: "rejected", Category: state.Editable}
)

// ApprovalFlow is the lifecycle of every project version. A rejected version
// stays editable and may be resubmitted; an approved version never leaves
// its state.
var ApprovalFlow = state.NewStateMachine(
	[]state.State{StateDraft, StatePending, StateApproved, StateRejected},
	[]state.Transition{
		{Name: "submit", From: StateDraft, To: StatePending},
		{Name: "submit", From: StateRejected, To: StatePending},
		{Name: "approve", From: StatePending, To: StateApproved},
		{Name: "reject", From: StatePending, To: StateRejected},
	})

func EditableStatuses() []string {
	statuses := []string{}
	for _, s := range ApprovalFlow.States {
		if s.Category == state.Editable {
			statuses = append(statuses, s.Name)
		}
	}
	return statuses
}
