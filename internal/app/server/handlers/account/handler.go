package account

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/request"
	"oip/account/internal/app/domains/entity/etaccount"
	"oip/account/internal/app/pkg/errorx"
	"oip/account/internal/app/pkg/ginx"
)

// AccountService 处理器依赖的账号服务
type AccountService interface {
	CreateAccount(ctx context.Context, payload any) (*etaccount.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error)
	ListAccounts(ctx context.Context, name string) ([]*etaccount.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, payload any) (*etaccount.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountHandler 账号 HTTP 处理器
type AccountHandler struct {
	accountService AccountService
}

// NewAccountHandler 创建账号处理器实例
func NewAccountHandler(accountService AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// bindAccountID 解析路径中的账号ID，失败时已写入响应
func bindAccountID(c *gin.Context) (int64, bool) {
	var uri request.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return 0, false
	}
	return uri.ID, true
}

// bindPayload 读取 JSON 请求体为通用结构，交由领域对象反序列化
func bindPayload(c *gin.Context) (any, error) {
	if ct := c.ContentType(); !strings.EqualFold(ct, gin.MIMEJSON) {
		return nil, errorx.NewBusinessError(http.StatusUnsupportedMediaType,
			"Content-Type must be "+gin.MIMEJSON)
	}
	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, etaccount.ErrBadPayload()
	}
	return payload, nil
}
