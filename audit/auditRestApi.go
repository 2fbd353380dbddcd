package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var AuditLogsApiRoot = "/v1/audit-logs"

func RegisterAuditRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	logs := r.Group(AuditLogsApiRoot, middleWares...)
	logs.GET("", HandleQueryAuditRecords)
}

func HandleQueryAuditRecords(c *gin.Context) {
	query := AuditQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(err)
	}
	records, err := QueryAuditRecordsFunc(&query)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}
