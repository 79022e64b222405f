package account

import (
	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/response"
	"oip/account/internal/app/pkg/ginx"
)

// Update godoc
// @Summary      更新账号
// @Description  使用请求体覆盖已存在账号的字段，ID 不可修改
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id path int true "账号ID"
// @Success      200 {object} ginx.Response "更新成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "账号不存在"
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	payload, err := bindPayload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, payload)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.Success(c, response.FromAccountEntity(account))
}
