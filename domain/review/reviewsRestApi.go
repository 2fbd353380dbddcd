package review

import (
	"net/http"
	"signoff/domain"
	"signoff/misc"
	"signoff/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ReviewsApiRoot = "/v1/reviews"

func RegisterReviewsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	reviews := r.Group(ReviewsApiRoot, middleWares...)
	reviews.GET("pending", HandleQueryPendingVersions)
	reviews.POST(":versionId/approve", HandleApproveVersion)
	reviews.POST(":versionId/reject", HandleRejectVersion)
}

func HandleQueryPendingVersions(c *gin.Context) {
	result, err := QueryPendingVersionsFunc(session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleApproveVersion(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, "versionId")
	if err != nil {
		panic(err)
	}
	payload := domain.ApprovalDecision{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := ApproveVersionFunc(id, &payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleRejectVersion(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, "versionId")
	if err != nil {
		panic(err)
	}
	payload := domain.ApprovalDecision{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := RejectVersionFunc(id, &payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
