package category

import (
	"net/http"
	"signoff/domain"
	"signoff/misc"
	"signoff/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var VersionsApiRoot = "/v1/versions"

func RegisterJobCategoriesRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	versions := r.Group(VersionsApiRoot, middleWares...)
	versions.POST(":id/job-categories", HandleAddJobCategories)
	versions.GET(":id/job-categories", HandleQueryJobCategories)
}

func HandleAddJobCategories(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	payload := []domain.JobCategoryCreating{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := AddJobCategoriesFunc(id, payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleQueryJobCategories(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := QueryJobCategoriesFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
