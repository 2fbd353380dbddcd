package session

import (
	"signoff/bizerror"
	"signoff/common"
	"strings"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

const KeySecCtx = "SecCtx"

const (
	HeaderUserID = "X-User-Id"
	HeaderRole   = "X-Role"
)

func FindSecurityContext(ctx *gin.Context) *Context {
	value, found := ctx.Get(KeySecCtx)
	if !found {
		return nil
	}
	secCtx, ok := value.(*Context)
	if !ok || secCtx.Identity.ID == 0 {
		return nil
	}
	return secCtx
}

func SaveSecurityContext(ctx *gin.Context, secCtx *Context) {
	if secCtx != nil && secCtx.Identity.ID != 0 {
		ctx.Set(KeySecCtx, secCtx)
	}
}

// HeaderAuthFilter trusts the upstream identity headers verbatim.
func HeaderAuthFilter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rawId := ctx.GetHeader(HeaderUserID)
		rawRole := ctx.GetHeader(HeaderRole)
		if rawId == "" || rawRole == "" {
			panic(bizerror.ErrUnauthenticated)
		}

		id, err := types.ParseID(rawId)
		if err != nil || id == 0 {
			panic(&common.ErrBadParam{Cause: err})
		}

		role := strings.ToLower(strings.TrimSpace(rawRole))
		if role != RoleCreator && role != RoleApprover {
			panic(bizerror.ErrForbidden)
		}

		SaveSecurityContext(ctx, &Context{Identity: Identity{ID: id}, Role: role})
		ctx.Next()
	}
}
