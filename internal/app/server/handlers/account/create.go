package account

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/response"
	"oip/account/internal/app/pkg/ginx"
)

// Create godoc
// @Summary      创建账号
// @Description  请求体为账号字段的键值结构，name/email 必填，date_joined 为 YYYY-MM-DD
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      201 {object} ginx.Response "创建成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      409 {object} ginx.Response "邮箱已存在"
// @Failure      415 {object} ginx.Response "Content-Type 错误"
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), payload)
	if err != nil {
		_ = c.Error(err)
		return
	}

	location := fmt.Sprintf("%s/%d", c.FullPath(), account.ID)
	ginx.Created(c, location, response.FromAccountEntity(account))
}
