package etaccount

import "fmt"

// ValidationError 账号数据校验错误
// Field 为出错字段（请求体整体非法时为空）
type ValidationError struct {
	Field   string
	Message string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建校验错误
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func errMissing(field string) *ValidationError {
	return NewValidationError(field, "Invalid Account: missing "+field)
}

// ErrBadPayload 请求体不是键值结构或无法解析
func ErrBadPayload() *ValidationError {
	return NewValidationError("", "Invalid Account: body of request contained bad or invalid data")
}

func errAttribute(field, reason string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("Invalid attribute: %s %s", field, reason))
}

// ErrEmptyID 更新时未设置 ID
func ErrEmptyID() *ValidationError {
	return NewValidationError("id", "Update called with empty ID field")
}
