package domain

import (
	"github.com/fundwit/go-commons/types"
)

type JobCategory struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	VersionID  types.ID `json:"versionId" sql:"type:BIGINT UNSIGNED NOT NULL"`
	Name       string   `json:"name"`
	RateCardID types.ID `json:"rateCardId"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type JobCategoryCreating struct {
	Name       string   `json:"name" binding:"required,lte=60"`
	RateCardID types.ID `json:"rateCardId" binding:"required"`
}

type RateCard struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Name       string `json:"name"`
	HourlyRate string `json:"hourlyRate"`
	Currency   string `json:"currency"`
}
