package request

// AccountURI 账号路径参数
type AccountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// ListAccountsQuery 账号列表查询参数
type ListAccountsQuery struct {
	Name string `form:"name" binding:"max=64"`
}
