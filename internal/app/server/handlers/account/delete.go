package account

import (
	"github.com/gin-gonic/gin"

	"oip/account/internal/app/pkg/ginx"
)

// Delete godoc
// @Summary      删除账号
// @Description  账号不存在时同样返回 204
// @Tags         accounts
// @Param        id path int true "账号ID"
// @Success      204 "删除成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		_ = c.Error(err)
		return
	}

	ginx.NoContent(c)
}
