package audit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fundwit/go-commons/types"
)

const (
	EntityProject     = "project"
	EntityVersion     = "project_version"
	EntityContract    = "contract"
	EntityJobCategory = "job_category"
)

type Detail map[string]interface{}

type AuditRecord struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	EntityType string   `json:"entityType"`
	EntityID   types.ID `json:"entityId"`
	Action     string   `json:"action"`

	ActorID   types.ID `json:"actorId"`
	ActorName string   `json:"actorName"`

	Detail Detail `json:"detail" sql:"type:TEXT"`

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *AuditRecord) TableName() string {
	return "audit_logs"
}

func (d Detail) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	jsonBytes, err := json.Marshal(&d)
	if err != nil {
		return nil, err
	}
	return string(jsonBytes), nil
}

func (d *Detail) Scan(v interface{}) error {
	jsonString, ok := v.(string)
	if !ok {
		jsonByte, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("type is neither string nor []byte: %T %v", v, v)
		}
		jsonString = string(jsonByte)
	}
	return json.Unmarshal([]byte(jsonString), d)
}

type AuditQuery struct {
	EntityType string   `form:"entityType"`
	EntityID   types.ID `form:"entityId"`
}
