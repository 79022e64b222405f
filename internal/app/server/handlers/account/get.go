package account

import (
	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/response"
	"oip/account/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取账号详情
// @Description  根据账号ID获取账号详细信息
// @Tags         accounts
// @Produce      json
// @Param        id path int true "账号ID"
// @Success      200 {object} ginx.Response "查询成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "账号不存在"
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.Success(c, response.FromAccountEntity(account))
}
