package indices

import (
	"signoff/audit"
	"signoff/client/es"

	"github.com/sirupsen/logrus"
)

var (
	AuditIndexName = "audit_logs"

	indexAuditRecordFunc = indexAuditRecord
)

// Bootstrap hooks audit indexing into the post-commit handler chain.
func Bootstrap() {
	audit.AuditHandlers = append(audit.AuditHandlers, IndexAuditHandler)
}

func IndexAuditHandler(record *audit.AuditRecord) *audit.AuditHandleResult {
	result := audit.AuditHandleResult{Success: true, HandlerIdentifier: "auditIndexer"}
	if err := indexAuditRecordFunc(record); err != nil {
		logrus.Warnf("index audit record %d failed: %v\n", record.ID, err)
		result.Success = false
		result.Message = err.Error()
	}
	return &result
}

func indexAuditRecord(record *audit.AuditRecord) error {
	return es.IndexFunc(AuditIndexName, record.ID, record)
}

// SearchAuditRecords serves full-text queries over the indexed audit trail.
// The relational table stays authoritative; the index may lag on handler
// failures.
func SearchAuditRecords(text string) (*es.ESSearchResult, error) {
	query := es.H{"query": es.H{"query_string": es.H{"query": text}}}
	return es.SearchFunc(AuditIndexName, query)
}
