package audit

import (
	"github.com/sirupsen/logrus"
)

/*
return nil if not support
*/
type AuditHandler func(r *AuditRecord) *AuditHandleResult

type AuditHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

var AuditHandlers []AuditHandler

var InvokeHandlersFunc = invokeHandlers

// invokeHandlers runs after the enclosing transaction committed. Handler
// failures are logged, never surfaced to the caller.
func invokeHandlers(record *AuditRecord) []AuditHandleResult {
	results := []AuditHandleResult{}
	for _, handler := range AuditHandlers {
		logrus.Debug("pre handle audit record ", record.ID)
		r := handler(record)

		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Info("post handle audit record. ", r)
		} else {
			logrus.Error("post handler error. ", r)
		}
	}
	return results
}
