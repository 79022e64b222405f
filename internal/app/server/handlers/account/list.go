package account

import (
	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/request"
	"oip/account/internal/app/domains/apimodel/response"
	"oip/account/internal/app/pkg/ginx"
)

// List godoc
// @Summary      账号列表
// @Description  返回全部账号；指定 name 时只返回名称完全匹配的账号
// @Tags         accounts
// @Produce      json
// @Param        name query string false "账号名称"
// @Success      200 {object} ginx.Response "查询成功"
// @Router       /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var query request.ListAccountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), query.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ginx.Success(c, response.FromAccountList(accounts))
}
