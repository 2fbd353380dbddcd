package audit

import (
	"signoff/idgen"
	"signoff/persistence"
	"signoff/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	auditIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	AuditPersistCreateFunc = auditPersistCreate
	QueryAuditRecordsFunc  = QueryAuditRecords
)

// CreateAuditRecord appends one record inside the caller's transaction. A
// persistence failure here must abort the whole transaction, so the error is
// returned untouched.
func CreateAuditRecord(entityType string, entityId types.ID, action string, detail Detail,
	identity *session.Identity, db *gorm.DB) (*AuditRecord, error) {

	record := AuditRecord{
		ID:         idgen.NextID(auditIdWorker),
		EntityType: entityType,
		EntityID:   entityId,
		Action:     action,
		ActorID:    identity.ID,
		ActorName:  identity.Name,
		Detail:     detail,
		Timestamp:  types.CurrentTimestamp(),
	}
	if err := AuditPersistCreateFunc(&record, db); err != nil {
		return nil, err
	}
	return &record, nil
}

func auditPersistCreate(record *AuditRecord, db *gorm.DB) error {
	return db.Create(record).Error
}

func QueryAuditRecords(query *AuditQuery) (*[]AuditRecord, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	q := db.Model(&AuditRecord{})
	if query.EntityType != "" {
		q = q.Where("entity_type = ?", query.EntityType)
	}
	if query.EntityID != 0 {
		q = q.Where("entity_id = ?", query.EntityID)
	}

	var records []AuditRecord
	if err := q.Order("timestamp DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return &records, nil
}
