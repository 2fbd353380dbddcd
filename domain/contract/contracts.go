package contract

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"signoff/audit"
	"signoff/bizerror"
	"signoff/client/blob"
	"signoff/common"
	"signoff/domain"
	"signoff/idgen"
	"signoff/persistence"
	"signoff/session"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	contractIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	UploadContractFunc   = UploadContract
	QueryContractsFunc   = QueryContracts
	DownloadContractFunc = DownloadContract
)

const dateLayout = "2006-01-02"

func parseDate(raw string) (types.Timestamp, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return types.Timestamp{}, &common.ErrBadParam{Cause: err}
	}
	return types.TimestampOfDate(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// UploadContract stores the document payload first, so a committed metadata
// row always points at an existing blob.
func UploadContract(versionId types.ID, u *domain.ContractUploading, filename string,
	content io.Reader, ctx context.Context, sec *session.Context) (*domain.ContractDocument, error) {

	if !sec.IsCreator() {
		return nil, bizerror.ErrForbidden
	}

	validFrom, err := parseDate(u.ValidFrom)
	if err != nil {
		return nil, err
	}
	validTill, err := parseDate(u.ValidTill)
	if err != nil {
		return nil, err
	}
	if validFrom.Time().After(validTill.Time()) {
		return nil, bizerror.ErrInvalidValidityPeriod
	}

	v := domain.ProjectVersion{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.ProjectVersion{ID: versionId}).First(&v).Error; err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s", v.ProjectID.String(), v.ID.String(), filename)
	if err := blob.PutObjectFunc(key, content, ctx); err != nil {
		return nil, err
	}

	doc := domain.ContractDocument{ID: idgen.NextID(contractIdWorker), VersionID: v.ID,
		DocumentType: u.DocumentType, ValidFrom: validFrom, ValidTill: validTill,
		StorageKey: key, Filename: filename, UploadTime: types.CurrentTimestamp()}

	var auditRecord *audit.AuditRecord
	err = persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		var err error
		auditRecord, err = audit.CreateAuditRecord(audit.EntityContract, doc.ID, "upload",
			audit.Detail{"filename": filename, "versionId": v.ID.String()}, &sec.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if audit.InvokeHandlersFunc != nil {
		audit.InvokeHandlersFunc(auditRecord)
	}
	return &doc, nil
}

// DownloadContract streams back the stored payload of a document.
func DownloadContract(contractId types.ID, ctx context.Context, sec *session.Context) ([]byte, *domain.ContractDocument, error) {
	doc := domain.ContractDocument{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.ContractDocument{ID: contractId}).First(&doc).Error; err != nil {
		return nil, nil, err
	}

	r, err := blob.GetObjectFunc(doc.StorageKey, ctx)
	if err != nil {
		if serErr, ok := err.(oss.ServiceError); ok && serErr.Code == "NoSuchKey" {
			return nil, nil, bizerror.ErrNotFound
		}
		return nil, nil, err
	}
	defer r.Close()

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return content, &doc, nil
}

func QueryContracts(versionId types.ID, sec *session.Context) (*[]domain.ContractDocument, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	var docs []domain.ContractDocument
	if err := db.Where(&domain.ContractDocument{VersionID: versionId}).
		Order("upload_time ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return &docs, nil
}
