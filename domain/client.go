package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Client struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	LegalEntityName   string `json:"legalEntityName"`
	RegisteredAddress string `json:"registeredAddress"`
	BillingAddress    string `json:"billingAddress"`
	BillingCurrency   string `json:"billingCurrency"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type ClientCreating struct {
	LegalEntityName   string `json:"legalEntityName" binding:"required,lte=120"`
	RegisteredAddress string `json:"registeredAddress" binding:"required"`
	BillingAddress    string `json:"billingAddress"`
	BillingCurrency   string `json:"billingCurrency" binding:"required,lte=8"`

	ContactName  string `json:"contactName" binding:"required,lte=60"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}
