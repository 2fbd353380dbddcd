package account

import (
	"net/http"
	"signoff/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var UsersApiRoot = "/v1/users"

func RegisterUsersRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	users := r.Group(UsersApiRoot, middleWares...)
	users.POST("", HandleCreateUser)
	users.GET("", HandleQueryUsers)
}

func HandleCreateUser(c *gin.Context) {
	payload := UserCreating{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		panic(err)
	}
	result, err := CreateUserFunc(&payload, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleQueryUsers(c *gin.Context) {
	result, err := QueryUsersFunc(session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
