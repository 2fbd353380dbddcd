package project

import (
	"errors"
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
	idWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateProjectFunc    = CreateProject
	QueryProjectsFunc    = QueryProjects
	DetailProjectFunc    = DetailProject
	QueryVersionsFunc    = QueryVersions
	UpdateDraftFunc      = UpdateDraft
	CreateNewVersionFunc = CreateNewVersion
	SubmitProjectFunc    = SubmitProject
)

// CreateProject creates the project identity and its version 1 draft in one
// transaction.
func CreateProject(c *domain.ProjectCreating, sec *session.Context) (*domain.Project, error) {
	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}

	now := types.CurrentTimestamp()
	p := domain.Project{ID: idgen.NextID(idWorker), Code: c.Code, Name: c.Name,
		ClientID: c.ClientID, Creator: sec.Identity.ID, CreateTime: now}
	v := domain.ProjectVersion{ID: idgen.NextID(idWorker), ProjectID: p.ID, Number: 1,
		Status: domain.StateDraft.Name, ProjectName: c.Name,
		StartDate: c.StartDate, EndDate: c.EndDate, BusinessUnit: c.BusinessUnit,
		ReviewerID: c.ReviewerID, Creator: sec.Identity.ID, CreateTime: now}

	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&domain.Project{}).Where(&domain.Project{Code: c.Code}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return bizerror.ErrProjectCodeExisted
		}

		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if err := tx.Create(v).Error; err != nil {
			return err
		}

		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityProject, p.ID, "create",
			audit.Detail{"code": p.Code, "version": 1}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return &p, nil
}

// QueryProjects matches a project on the status of ANY of its versions, not
// only the active one. Duplicates from the join are collapsed.
func QueryProjects(query *domain.ProjectQuery, sec *session.Context) (*[]domain.Project, error) {
	db := persistence.ActiveDataSourceManager.GormDB()

	q := db.Model(&domain.Project{})
	if query.ClientID != 0 {
		q = q.Where("projects.client_id = ?", query.ClientID)
	}
	if query.CreatorID != 0 {
		q = q.Where("projects.creator = ?", query.CreatorID)
	}
	if query.Status != "" {
		q = q.Select("DISTINCT projects.*").
			Joins("JOIN project_versions ON project_versions.project_id = projects.id").
			Where("project_versions.status = ?", query.Status)
	}

	var projects []domain.Project
	if err := q.Order("projects.create_time ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return &projects, nil
}

func DetailProject(id types.ID, sec *session.Context) (*domain.Project, error) {
	p := domain.Project{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.Project{ID: id}).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func QueryVersions(projectId types.ID, sec *session.Context) (*[]domain.ProjectVersion, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	var versions []domain.ProjectVersion
	if err := db.Where(&domain.ProjectVersion{ProjectID: projectId}).
		Order("number ASC").Find(&versions).Error; err != nil {
		return nil, err
	}
	return &versions, nil
}

// latestEditableVersion resolves the single version a creator may still
// mutate: the highest-numbered draft or rejected one.
func latestEditableVersion(projectId types.ID, tx *gorm.DB) (*domain.ProjectVersion, error) {
	v := domain.ProjectVersion{}
	err := tx.Where("project_id = ? AND status IN (?)", projectId, domain.EditableStatuses()).
		Order("number DESC").First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func UpdateDraft(projectId types.ID, u *domain.VersionUpdating, sec *session.Context) (*domain.ProjectVersion, error) {
	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}

	var updated *domain.ProjectVersion
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		// locking read, a concurrent submit serializes ahead of the metadata
		// write. The mysql driver reports changed rows rather than matched
		// rows, so an affected-rows check cannot tell a blocked update from a
		// retry carrying identical metadata.
		v := domain.ProjectVersion{}
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("project_id = ? AND status IN (?)", projectId, domain.EditableStatuses()).
			Order("number DESC").First(&v).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrInvalidState
			}
			return err
		}

		if err := tx.Model(&domain.ProjectVersion{}).
			Where("id = ?", v.ID).
			Updates(map[string]interface{}{
				"project_name":  u.ProjectName,
				"start_date":    u.StartDate,
				"end_date":      u.EndDate,
				"business_unit": u.BusinessUnit,
				"reviewer_id":   u.ReviewerID,
				"creator":       sec.Identity.ID,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where(&domain.ProjectVersion{ID: v.ID}).First(&v).Error; err != nil {
			return err
		}
		updated = &v

		auditRecord, err = audit.CreateAuditRecord(audit.EntityVersion, v.ID, "update",
			audit.Detail{"projectName": u.ProjectName, "businessUnit": u.BusinessUnit}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return updated, nil
}

// CreateNewVersion re-opens an approved project for edits by copying the
// active version's metadata into a fresh draft numbered max+1.
func CreateNewVersion(projectId types.ID, sec *session.Context) (*domain.ProjectVersion, error) {
	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}

	var created *domain.ProjectVersion
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		p := domain.Project{}
		if err := tx.Where(&domain.Project{ID: projectId}).First(&p).Error; err != nil {
			return err
		}
		if p.ActiveVersionID == 0 {
			return bizerror.ErrInvalidState
		}

		active := domain.ProjectVersion{}
		if err := tx.Where(&domain.ProjectVersion{ID: p.ActiveVersionID}).First(&active).Error; err != nil {
			return err
		}

		latest := domain.ProjectVersion{}
		if err := tx.Where(&domain.ProjectVersion{ProjectID: projectId}).
			Order("number DESC").First(&latest).Error; err != nil {
			return err
		}

		v := domain.ProjectVersion{ID: idgen.NextID(idWorker), ProjectID: projectId,
			Number: latest.Number + 1, Status: domain.StateDraft.Name,
			ProjectName: active.ProjectName, StartDate: active.StartDate, EndDate: active.EndDate,
			BusinessUnit: active.BusinessUnit, ReviewerID: active.ReviewerID,
			Creator: sec.Identity.ID, CreateTime: types.CurrentTimestamp()}
		// the unique index on (project_id, number) rejects a concurrent
		// creation of the same number
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		created = &v

		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityVersion, v.ID, "create_new_version",
			audit.Detail{"copiedFrom": active.ID.String(), "number": v.Number}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return created, nil
}

// SubmitProject runs the submission gate: all completeness checks pass before
// any write happens, then the draft moves to pending in the same transaction.
func SubmitProject(projectId types.ID, sec *session.Context) (*domain.ProjectVersion, error) {
	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}

	var submitted *domain.ProjectVersion
	var auditRecord *audit.AuditRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		v, err := latestEditableVersion(projectId, tx)
		if err != nil {
			return err
		}
		if v == nil {
			return bizerror.ErrInvalidState
		}
		if len(domain.ApprovalFlow.AvailableTransitions(v.Status, domain.StatePending.Name)) == 0 {
			return bizerror.ErrInvalidState
		}

		var contracts int
		if err := tx.Model(&domain.ContractDocument{}).
			Where(&domain.ContractDocument{VersionID: v.ID}).Count(&contracts).Error; err != nil {
			return err
		}
		if contracts == 0 {
			return bizerror.ErrContractRequired
		}

		var categories int
		if err := tx.Model(&domain.JobCategory{}).
			Where(&domain.JobCategory{VersionID: v.ID}).Count(&categories).Error; err != nil {
			return err
		}
		if categories == 0 {
			return bizerror.ErrJobCategoryRequired
		}

		now := types.CurrentTimestamp()
		db := tx.Model(&domain.ProjectVersion{}).
			Where("id = ? AND status IN (?)", v.ID, domain.EditableStatuses()).
			Updates(map[string]interface{}{"status": domain.StatePending.Name, "submit_time": now})
		if db.Error != nil {
			return db.Error
		}
		if db.RowsAffected != 1 {
			return bizerror.ErrInvalidState
		}

		v.Status = domain.StatePending.Name
		v.SubmitTime = now
		submitted = v

		auditRecord, err = audit.CreateAuditRecord(audit.EntityVersion, v.ID, "submit", nil, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return submitted, nil
}
