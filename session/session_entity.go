package session

import (
	"github.com/fundwit/go-commons/types"
)

const (
	RoleCreator  = "creator"
	RoleApprover = "approver"
)

type Identity struct {
	ID   types.ID `json:"id"`
	Name string   `json:"name"`
}

type Context struct {
	Identity Identity `json:"identity"`
	Role     string   `json:"role"`
}

func (c *Context) IsCreator() bool {
	return c.Role == RoleCreator
}

func (c *Context) IsApprover() bool {
	return c.Role == RoleApprover
}
