package contract

import (
	"net/http"
	"signoff/common"
	"signoff/domain"
	"signoff/misc"
	"signoff/session"

	"github.com/gin-gonic/gin"
)

var (
	VersionsApiRoot  = "/v1/versions"
	ContractsApiRoot = "/v1/contracts"
)

func RegisterContractsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	versions := r.Group(VersionsApiRoot, middleWares...)
	versions.POST(":id/contracts", HandleUploadContract)
	versions.GET(":id/contracts", HandleQueryContracts)

	contracts := r.Group(ContractsApiRoot, middleWares...)
	contracts.GET(":id/content", HandleDownloadContract)
}

func HandleUploadContract(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}

	payload := domain.ContractUploading{}
	if err := c.ShouldBind(&payload); err != nil {
		panic(err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	file, err := fileHeader.Open()
	if err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	defer file.Close()

	result, err := UploadContractFunc(id, &payload, fileHeader.Filename, file,
		c.Request.Context(), session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleDownloadContract(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	content, doc, err := DownloadContractFunc(id, c.Request.Context(), session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func HandleQueryContracts(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := QueryContractsFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
