package etaccount

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"oip/account/internal/app/domains/entity/etprimitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 错误里使用序列化后的字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Account 账号实体
type Account struct {
	ID          int64     `json:"id"`                                // 账号ID，0 表示尚未落库
	Name        string    `json:"name" validate:"required,max=64"`   // 账号名称
	Email       string    `json:"email" validate:"required,max=120"` // 邮箱（唯一性由存储层保证）
	Address     string    `json:"address" validate:"max=256"`        // 地址
	PhoneNumber string    `json:"phone_number" validate:"max=32"`    // 电话
	DateJoined  time.Time `json:"date_joined"`                       // 入驻日期，零值表示由存储层取当天
}

// NewAccount 创建账号
func NewAccount(name, email string) *Account {
	return &Account{Name: name, Email: email}
}

// String 便于日志输出
func (a *Account) String() string {
	return fmt.Sprintf("<Account %s id=[%d]>", a.Name, a.ID)
}

// Validate 按字段长度约束校验，返回第一个失败字段
func (a *Account) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return NewValidationError("", "Invalid Account: "+err.Error())
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return NewValidationError(fe.Field(), "Invalid Account: "+fe.Field()+" is required")
	case "max":
		return NewValidationError(fe.Field(), fmt.Sprintf("Invalid Account: %s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return NewValidationError(fe.Field(), "Invalid Account: "+fe.Field()+" is invalid")
	}
}

// Serialize 序列化为 map，date_joined 输出 YYYY-MM-DD
func (a *Account) Serialize() map[string]any {
	var id any
	if a.ID != 0 {
		id = a.ID
	}
	var dateJoined any
	if !a.DateJoined.IsZero() {
		dateJoined = etprimitive.FormatDate(a.DateJoined)
	}
	return map[string]any{
		"id":           id,
		"name":         a.Name,
		"email":        a.Email,
		"address":      a.Address,
		"phone_number": a.PhoneNumber,
		"date_joined":  dateJoined,
	}
}

// Deserialize 从 map 反序列化到当前实例并返回自身
// 不会修改 ID；date_joined 缺失或为空时保留原值
func (a *Account) Deserialize(data any) (*Account, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, ErrBadPayload()
	}

	name, err := requiredString(m, "name")
	if err != nil {
		return nil, err
	}
	email, err := requiredString(m, "email")
	if err != nil {
		return nil, err
	}
	address, err := optionalString(m, "address")
	if err != nil {
		return nil, err
	}
	phone, err := optionalString(m, "phone_number")
	if err != nil {
		return nil, err
	}
	dateStr, err := optionalString(m, "date_joined")
	if err != nil {
		return nil, err
	}

	dateJoined := a.DateJoined
	if dateStr != "" {
		dateJoined, err = etprimitive.ParseDate(dateStr)
		if err != nil {
			return nil, errAttribute("date_joined", fmt.Sprintf("is not a valid ISO-8601 date: %q", dateStr))
		}
	}

	a.Name = name
	a.Email = email
	a.Address = address
	a.PhoneNumber = phone
	a.DateJoined = dateJoined
	return a, nil
}

// requiredString 缺失或 null 视为未提供
func requiredString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", errMissing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", errAttribute(key, "must be a string")
	}
	return s, nil
}

// optionalString 缺失或 null 视为空串
func optionalString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errAttribute(key, "must be a string")
	}
	return s, nil
}
