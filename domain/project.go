package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Project struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Code string `json:"code" gorm:"unique_index:code_unique"`
	Name string `json:"name"`

	ClientID types.ID `json:"clientId"`
	Creator  types.ID `json:"creator"`

	// ActiveVersionID is owned by the review side; zero until the first
	// approval succeeds.
	ActiveVersionID types.ID `json:"activeVersionId"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type ProjectCreating struct {
	Code     string   `json:"code" binding:"required,lte=32"`
	Name     string   `json:"name" binding:"required,lte=120"`
	ClientID types.ID `json:"clientId" binding:"required"`

	StartDate    types.Timestamp `json:"startDate" binding:"required"`
	EndDate      types.Timestamp `json:"endDate" binding:"required"`
	BusinessUnit string          `json:"businessUnit" binding:"required,lte=60"`
	ReviewerID   types.ID        `json:"reviewerId" binding:"required"`
}

type ProjectQuery struct {
	Status    string   `form:"status"`
	ClientID  types.ID `form:"clientId"`
	CreatorID types.ID `form:"creatorId"`
}
