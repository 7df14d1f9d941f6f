package author

import (
	"time"
)

// Author 作者实体
type Author struct {
	ID        uint
	FirstName string
	LastName  string
	Birthdate *time.Time // 出生日期(数据库允许为空)
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(firstName, lastName string, birthdate time.Time) *Author {
	a := &Author{}
	a.Rename(firstName, lastName, birthdate)
	return a
}

// Rename 覆盖姓名和出生日期
func (a *Author) Rename(firstName, lastName string, birthdate time.Time) {
	a.FirstName = firstName
	a.LastName = lastName
	a.Birthdate = &birthdate
}

// FullName 名 姓
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
