package mdaccount

import (
	"context"

	"oip/account/internal/app/domains/entity/etaccount"
	"oip/account/internal/app/domains/repo/rpaccount"
	"oip/account/internal/app/pkg/logger"
)

// AccountModule 账号模块，负责账号数据操作
// 存储层错误原样返回，不做重试
type AccountModule struct {
	accountRepo rpaccount.AccountRepository
	logger      logger.Logger
}

// NewAccountModule 创建账号模块
func NewAccountModule(accountRepo rpaccount.AccountRepository, log logger.Logger) *AccountModule {
	return &AccountModule{
		accountRepo: accountRepo,
		logger:      log,
	}
}

// Create 创建账号，调用方传入的ID会被清空并由数据库重新分配
func (m *AccountModule) Create(ctx context.Context, account *etaccount.Account) error {
	m.logger.InfoContext(ctx, "Creating account", "name", account.Name)
	account.ID = 0
	return m.accountRepo.Create(ctx, account)
}

// Update 更新账号，ID 必须已分配
func (m *AccountModule) Update(ctx context.Context, account *etaccount.Account) error {
	m.logger.InfoContext(ctx, "Updating account", "name", account.Name, "id", account.ID)
	if account.ID == 0 {
		return etaccount.ErrEmptyID()
	}
	return m.accountRepo.Update(ctx, account)
}

// Delete 删除账号
func (m *AccountModule) Delete(ctx context.Context, account *etaccount.Account) error {
	m.logger.InfoContext(ctx, "Deleting account", "name", account.Name, "id", account.ID)
	return m.accountRepo.Delete(ctx, account.ID)
}

// All 查询全部账号
func (m *AccountModule) All(ctx context.Context) ([]*etaccount.Account, error) {
	m.logger.InfoContext(ctx, "Processing all accounts")
	return m.accountRepo.FindAll(ctx)
}

// Find 根据ID查询账号，不存在时返回 nil, nil
func (m *AccountModule) Find(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	m.logger.InfoContext(ctx, "Processing lookup for id", "id", accountID)
	return m.accountRepo.FindByID(ctx, accountID)
}

// FindByName 查询名称完全匹配的账号
func (m *AccountModule) FindByName(ctx context.Context, name string) ([]*etaccount.Account, error) {
	m.logger.InfoContext(ctx, "Processing name query", "name", name)
	return m.accountRepo.FindByName(ctx, name)
}
