package project

import (
	"net/http"
	"signoff/domain"
	"signoff/misc"
	"signoff/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ProjectsApiRoot = "/v1/projects"

func RegisterProjectsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	projects := r.Group(ProjectsApiRoot, middleWares...)
	projects.POST("", HandleCreateProject)
	projects.GET("", HandleQueryProjects)
	projects.GET(":id", HandleDetailProject)
	projects.GET(":id/versions", HandleQueryVersions)
	projects.PUT(":id/draft", HandleUpdateDraft)
	projects.POST(":id/new-version", HandleCreateNewVersion)
	projects.POST(":id/submit", HandleSubmitProject)
}

func HandleCreateProject(c *gin.Context) {
	payload := domain.ProjectCreating{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := CreateProjectFunc(&payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleQueryProjects(c *gin.Context) {
	query := domain.ProjectQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(err)
	}
	result, err := QueryProjectsFunc(&query, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleDetailProject(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := DetailProjectFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleQueryVersions(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := QueryVersionsFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleUpdateDraft(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	payload := domain.VersionUpdating{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := UpdateDraftFunc(id, &payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleCreateNewVersion(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := CreateNewVersionFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleSubmitProject(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := SubmitProjectFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
