package category

import (
	"signoff/audit"
	"signoff/bizerror"
	"signoff/domain"
	"signoff/idgen"
	"signoff/persistence"
	"signoff/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	categoryIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	AddJobCategoriesFunc   = AddJobCategories
	QueryJobCategoriesFunc = QueryJobCategories
)

// AddJobCategories appends named roles to a version. Every referenced rate
// card must exist before any row is written.
func AddJobCategories(versionId types.ID, creations []domain.JobCategoryCreating, sec *session.Context) (*[]domain.JobCategory, error) {
	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}
	if len(creations) == 0 {
		return nil, bizerror.ErrJobCategoryRequired
	}

	var categories []domain.JobCategory
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		v := domain.ProjectVersion{}
		if err := tx.Where(&domain.ProjectVersion{ID: versionId}).First(&v).Error; err != nil {
			return err
		}

		for _, c := range creations {
			rateCard := domain.RateCard{}
			if err := tx.Where(&domain.RateCard{ID: c.RateCardID}).First(&rateCard).Error; err != nil {
				return err
			}
		}

		now := types.CurrentTimestamp()
		for _, c := range creations {
			jc := domain.JobCategory{ID: idgen.NextID(categoryIdWorker), VersionID: v.ID,
				Name: c.Name, RateCardID: c.RateCardID, CreateTime: now}
			if err := tx.Create(jc).Error; err != nil {
				return err
			}
			categories = append(categories, jc)
		}

		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityJobCategory, v.ID, "add",
			audit.Detail{"count": len(categories)}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return &categories, nil
}

func QueryJobCategories(versionId types.ID, sec *session.Context) (*[]domain.JobCategory, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	var categories []domain.JobCategory
	if err := db.Where(&domain.JobCategory{VersionID: versionId}).
		Order("create_time ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return &categories, nil
}
