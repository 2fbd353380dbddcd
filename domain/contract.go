package domain

import (
	"github.com/fundwit/go-commons/types"
)

type ContractDocument struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	VersionID types.ID `json:"versionId" sql:"type:BIGINT UNSIGNED NOT NULL"`

	DocumentType string          `json:"documentType"`
	ValidFrom    types.Timestamp `json:"validFrom" sql:"type:DATETIME(6) NOT NULL"`
	ValidTill    types.Timestamp `json:"validTill" sql:"type:DATETIME(6) NOT NULL"`

	StorageKey string          `json:"storageKey"`
	Filename   string          `json:"filename"`
	UploadTime types.Timestamp `json:"uploadTime" sql:"type:DATETIME(6) NOT NULL"`
}

type ContractUploading struct {
	DocumentType string `form:"documentType" binding:"required,lte=60"`
	ValidFrom    string `form:"validFrom" binding:"required"`
	ValidTill    string `form:"validTill" binding:"required"`
}
