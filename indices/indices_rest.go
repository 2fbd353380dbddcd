package indices

import (
	"net/http"
	"signoff/common"

	"github.com/gin-gonic/gin"
)

var AuditSearchApiRoot = "/v1/audit-search"

func RegisterAuditSearchRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	search := r.Group(AuditSearchApiRoot, middleWares...)
	search.GET("", HandleSearchAuditRecords)
}

func HandleSearchAuditRecords(c *gin.Context) {
	text := c.Query("q")
	if text == "" {
		panic(&common.ErrBadParam{})
	}
	result, err := SearchAuditRecords(text)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
