package review

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
	reviewIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	QueryPendingVersionsFunc = QueryPendingVersions
	ApproveVersionFunc       = ApproveVersion
	RejectVersionFunc        = RejectVersion
)

func QueryPendingVersions(sec *session.Context) (*[]domain.ProjectVersion, error) {
	if !sec.IsApprover() {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB()
	var versions []domain.ProjectVersion
	if err := db.Where(&domain.ProjectVersion{Status: domain.StatePending.Name}).
		Order("submit_time ASC").Find(&versions).Error; err != nil {
		return nil, err
	}
	return &versions, nil
}

// ApproveVersion promotes a pending version to approved and makes it the
// project's single active version. The status predicate on the update makes
// concurrent approvals of the same version serialize: only the first call
// flips the row, every later one sees zero affected rows.
func ApproveVersion(versionId types.ID, decision *domain.ApprovalDecision, sec *session.Context) (*domain.ApprovalEvent, error) {
	if !sec.IsApprover() {
		return nil, bizerror.ErrForbidden
	}

	var event *domain.ApprovalEvent
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		v := domain.ProjectVersion{}
		if err := tx.Where(&domain.ProjectVersion{ID: versionId}).First(&v).Error; err != nil {
			return err
		}
		if len(domain.ApprovalFlow.AvailableTransitions(v.Status, domain.StateApproved.Name)) == 0 {
			return bizerror.ErrInvalidState
		}

		now := types.CurrentTimestamp()
		db := tx.Model(&domain.ProjectVersion{}).
			Where("id = ? AND status = ?", v.ID, domain.StatePending.Name).
			Updates(map[string]interface{}{
				"status":       domain.StateApproved.Name,
				"approve_time": now,
				"active":       true,
			})
		if db.Error != nil {
			return db.Error
		}
		if db.RowsAffected != 1 {
			return bizerror.ErrInvalidState
		}

		p := domain.Project{}
		if err := tx.Where(&domain.Project{ID: v.ProjectID}).First(&p).Error; err != nil {
			return err
		}

		// demote the prior active version; its status stays untouched
		if p.ActiveVersionID != 0 && p.ActiveVersionID != v.ID {
			if err := tx.Model(&domain.ProjectVersion{}).
				Where("id = ?", p.ActiveVersionID).
				Update("active", false).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&domain.Project{}).
			Where("id = ?", p.ID).
			Update("active_version_id", v.ID).Error; err != nil {
			return err
		}

		e := domain.ApprovalEvent{ID: idgen.NextID(reviewIdWorker), VersionID: v.ID,
			Action: domain.ApprovalActionApproved, ActorID: sec.Identity.ID,
			Comment: decision.Comment, CreateTime: now}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		event = &e

		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityVersion, v.ID, "approve",
			audit.Detail{"comment": decision.Comment}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return event, nil
}

// RejectVersion moves a pending version back to the editable side. The
// project's active version pointer never changes here.
func RejectVersion(versionId types.ID, decision *domain.ApprovalDecision, sec *session.Context) (*domain.ApprovalEvent, error) {
	if !sec.IsApprover() {
		return nil, bizerror.ErrForbidden
	}

	var event *domain.ApprovalEvent
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		v := domain.ProjectVersion{}
		if err := tx.Where(&domain.ProjectVersion{ID: versionId}).First(&v).Error; err != nil {
			return err
		}
		if len(domain.ApprovalFlow.AvailableTransitions(v.Status, domain.StateRejected.Name)) == 0 {
			return bizerror.ErrInvalidState
		}

		now := types.CurrentTimestamp()
		db := tx.Model(&domain.ProjectVersion{}).
			Where("id = ? AND status = ?", v.ID, domain.StatePending.Name).
			Updates(map[string]interface{}{
				"status":            domain.StateRejected.Name,
				"reject_time":       now,
				"rejection_comment": decision.Comment,
			})
		if db.Error != nil {
			return db.Error
		}
		if db.RowsAffected != 1 {
			return bizerror.ErrInvalidState
		}

		e := domain.ApprovalEvent{ID: idgen.NextID(reviewIdWorker), VersionID: v.ID,
			Action: domain.ApprovalActionRejected, ActorID: sec.Identity.ID,
			Comment: decision.Comment, CreateTime: now}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		event = &e

		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityVersion, v.ID, "reject",
			audit.Detail{"comment": decision.Comment}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return event, nil
}
