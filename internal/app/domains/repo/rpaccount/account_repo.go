package rpaccount

import (
	"context"

	"oip/account/internal/app/domains/entity/etaccount"
)

// AccountRepository 账号仓储接口
type AccountRepository interface {
	// Create 创建账号，ID 由数据库生成并回写
	Create(ctx context.Context, account *etaccount.Account) error

	// Update 更新已存在账号的全部字段
	Update(ctx context.Context, account *etaccount.Account) error

	// Delete 根据ID删除账号
	Delete(ctx context.Context, accountID int64) error

	// FindAll 查询全部账号（按ID升序）
	FindAll(ctx context.Context) ([]*etaccount.Account, error)

	// FindByID 根据ID查询账号，不存在时返回 nil, nil
	FindByID(ctx context.Context, accountID int64) (*etaccount.Account, error)

	// FindByName 查询名称完全匹配的账号
	FindByName(ctx context.Context, name string) ([]*etaccount.Account, error)
}
