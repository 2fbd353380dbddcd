package domain

import (
	"github.com/fundwit/go-commons/types"
)

const (
	ApprovalActionApproved = "approved"
	ApprovalActionRejected = "rejected"
)

// ApprovalEvent is an append-only record of a lifecycle decision.
type ApprovalEvent struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	VersionID types.ID `json:"versionId" sql:"type:BIGINT UNSIGNED NOT NULL"`
	Action    string   `json:"action"`
	ActorID   types.ID `json:"actorId"`
	Comment   string   `json:"comment"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type ApprovalDecision struct {
	Comment string `json:"comment" binding:"lte=500"`
}
