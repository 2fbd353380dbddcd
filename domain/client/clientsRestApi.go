package client

import (
	"net/http"
	"signoff/domain"
	"signoff/misc"
	"signoff/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ClientsApiRoot = "/v1/clients"

func RegisterClientsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	clients := r.Group(ClientsApiRoot, middleWares...)
	clients.POST("", HandleCreateClient)
	clients.GET("", HandleQueryClients)
	clients.GET(":id", HandleDetailClient)
}

func HandleCreateClient(c *gin.Context) {
	payload := domain.ClientCreating{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := CreateClientFunc(&payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleQueryClients(c *gin.Context) {
	result, err := QueryClientsFunc(session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleDetailClient(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(err)
	}
	result, err := DetailClientFunc(id, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
