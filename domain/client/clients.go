package client

import (
	"signoff/domain"
	"signoff/idgen"
	"signoff/persistence"
	"signoff/session"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

var (
	clientIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateClientFunc = CreateClient
	QueryClientsFunc = QueryClients
	DetailClientFunc = DetailClient
)

func CreateClient(c *domain.ClientCreating, sec *session.Context) (*domain.Client, error) {
	record := domain.Client{ID: idgen.NextID(clientIdWorker),
		LegalEntityName: c.LegalEntityName, RegisteredAddress: c.RegisteredAddress,
		BillingAddress: c.BillingAddress, BillingCurrency: c.BillingCurrency,
		ContactName: c.ContactName, ContactEmail: c.ContactEmail,
		CreateTime: types.CurrentTimestamp()}
	if record.BillingAddress == "" {
		record.BillingAddress = c.RegisteredAddress
	}

	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Create(record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func QueryClients(sec *session.Context) (*[]domain.Client, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	var clients []domain.Client
	if err := db.Order("create_time ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return &clients, nil
}

func DetailClient(id types.ID, sec *session.Context) (*domain.Client, error) {
	c := domain.Client{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.Client{ID: id}).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
