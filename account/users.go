package account

import (
	"signoff/idgen"
	"signoff/persistence"
	"signoff/session"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

type User struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Name string `json:"name"`
	Role string `json:"role"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type UserCreating struct {
	Name string `json:"name" binding:"required,lte=60"`
	Role string `json:"role" binding:"required,oneof=creator approver"`
}

var (
	userIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateUserFunc = CreateUser
	QueryUsersFunc = QueryUsers
)

func CreateUser(c *UserCreating, sec *session.Context) (*User, error) {
	u := User{ID: idgen.NextID(userIdWorker), Name: c.Name, Role: c.Role,
		CreateTime: types.CurrentTimestamp()}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func QueryUsers(sec *session.Context) (*[]User, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	var users []User
	if err := db.Order("create_time ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return &users, nil
}
