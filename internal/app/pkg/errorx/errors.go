package errorx

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"oip/account/internal/app/domains/entity/etaccount"
)

// 业务错误
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidID       = errors.New("invalid account id")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

// FromError 将任意错误归类为带 HTTP 状态码的业务错误
func FromError(err error) *BusinessError {
	if err == nil {
		return nil
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}

	var ve *etaccount.ValidationError
	if errors.As(err, &ve) {
		be := NewBusinessError(http.StatusBadRequest, ve.Message)
		if ve.Field != "" {
			be.Details = []ErrorDetail{{Path: ve.Field, Info: ve.Message}}
		}
		return be
	}

	switch {
	case errors.Is(err, ErrAccountNotFound):
		return NewBusinessError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidID):
		return NewBusinessError(http.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewBusinessError(http.StatusConflict, "account with this email already exists")
	default:
		return NewBusinessError(http.StatusInternalServerError, err.Error())
	}
}
