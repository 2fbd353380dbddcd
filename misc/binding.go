package misc

import (
	"signoff/common"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

func BindingPathID(c *gin.Context) (types.ID, error) {
	return BindingPathParamID(c, "id")
}

func BindingPathParamID(c *gin.Context, name string) (types.ID, error) {
	id, err := types.ParseID(c.Param(name))
	if err != nil {
		return 0, &common.ErrBadParam{Cause: err}
	}
	if id == 0 {
		return 0, &common.ErrBadParam{}
	}
	return id, nil
}
