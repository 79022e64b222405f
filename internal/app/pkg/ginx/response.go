package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"oip/account/internal/app/pkg/errorx"
)

// Response 统一响应结构
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// Meta 元数据
type Meta struct {
	Code    int           `json:"code" example:"200"`
	Message string        `json:"message" example:"OK"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string `json:"path" example:"email"`
	Info string `json:"info" example:"Invalid Account: missing email"`
}

// Success 200
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, http.StatusText(http.StatusOK), data, nil)
}

// Created 201，location 写入 Location 头
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	write(c, http.StatusCreated, http.StatusText(http.StatusCreated), data, nil)
}

// NoContent 204，无响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，details 可选
func Error(c *gin.Context, httpCode int, message string, details ...ErrorDetail) {
	write(c, httpCode, message, nil, details)
}

// BusinessError 按业务错误输出响应
func BusinessError(c *gin.Context, be *errorx.BusinessError) {
	details := make([]ErrorDetail, 0, len(be.Details))
	for _, d := range be.Details {
		details = append(details, ErrorDetail{Path: d.Path, Info: d.Info})
	}
	Error(c, be.Code, be.Message, details...)
}

// BadRequestWithValidation 参数绑定失败，校验错误逐字段列出
func BadRequestWithValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}

	details := make([]ErrorDetail, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, ErrorDetail{
			Path: fieldErr.Field(),
			Info: validationMessage(fieldErr),
		})
	}
	Error(c, http.StatusBadRequest, "Validation failed", details...)
}

func write(c *gin.Context, httpCode int, message string, data interface{}, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:    httpCode,
			Message: message,
			Details: details,
		},
		Data: data,
	})
}

// validationMessage 根据校验标签生成提示
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
