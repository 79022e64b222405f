package response

import "oip/account/internal/app/domains/entity/etaccount"

// FromAccountEntity 从领域对象转换为响应数据
func FromAccountEntity(account *etaccount.Account) map[string]any {
	return account.Serialize()
}

// FromAccountList 转换账号列表，空列表输出 []
func FromAccountList(accounts []*etaccount.Account) []map[string]any {
	items := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, FromAccountEntity(account))
	}
	return items
}
