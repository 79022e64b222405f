package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"oip/account/internal/app/domains/entity/etprimitive"
)

// Account 账号表持久化对象
type Account struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string         `gorm:"column:name;type:varchar(64);not null"`
	Email       string         `gorm:"column:email;type:varchar(120);uniqueIndex:uk_email;not null"`
	Address     string         `gorm:"column:address;type:varchar(256)"`
	PhoneNumber string         `gorm:"column:phone_number;type:varchar(32)"`
	DateJoined  datatypes.Date `gorm:"column:date_joined;type:date;not null"`
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate 未指定入驻日期时默认为当天
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if time.Time(a.DateJoined).IsZero() {
		a.DateJoined = datatypes.Date(etprimitive.Today())
	}
	return nil
}
