package svaccount

import (
	"context"
	"fmt"
	"time"

	"oip/account/internal/app/domains/entity/etaccount"
	"oip/account/internal/app/domains/modules/mdaccount"
	"oip/account/internal/app/pkg/errorx"
	"oip/account/internal/app/pkg/logger"
)

// 账号变更事件类型
const (
	EventAccountCreated = "account.created"
	EventAccountUpdated = "account.updated"
	EventAccountDeleted = "account.deleted"
)

// EventPublisher 变更通知发布者（Redis Pub/Sub 实现）
type EventPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// AccountEvent 账号变更通知消息
type AccountEvent struct {
	Type      string         `json:"type"`
	AccountID int64          `json:"account_id"`
	Account   map[string]any `json:"account,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

// AccountService 账号服务，负责账号业务编排
type AccountService struct {
	accountModule *mdaccount.AccountModule
	publisher     EventPublisher
	channel       string
	logger        logger.Logger
}

// Option 服务可选配置
type Option func(*AccountService)

// WithPublisher 启用账号变更通知
func WithPublisher(publisher EventPublisher, channel string) Option {
	return func(s *AccountService) {
		s.publisher = publisher
		s.channel = channel
	}
}

// NewAccountService 创建账号服务实例
func NewAccountService(accountModule *mdaccount.AccountModule, log logger.Logger, opts ...Option) *AccountService {
	s := &AccountService{
		accountModule: accountModule,
		logger:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAccount 创建账号（完整业务流程）
// 1. 反序列化请求体
// 2. 校验字段约束
// 3. 落库（邮箱唯一性由数据库保证）
// 4. 发布变更通知
func (s *AccountService) CreateAccount(ctx context.Context, payload any) (*etaccount.Account, error) {
	account, err := new(etaccount.Account).Deserialize(payload)
	if err != nil {
		return nil, err
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := s.accountModule.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("save account failed: %w", err)
	}

	s.notify(ctx, EventAccountCreated, account)
	return account, nil
}

// GetAccount 查询账号，不存在时返回 errorx.ErrAccountNotFound
func (s *AccountService) GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	account, err := s.accountModule.Find(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("find account failed: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account with id [%d] could not be found: %w", accountID, errorx.ErrAccountNotFound)
	}
	return account, nil
}

// ListAccounts 查询账号列表，name 非空时按名称精确过滤
func (s *AccountService) ListAccounts(ctx context.Context, name string) ([]*etaccount.Account, error) {
	var (
		accounts []*etaccount.Account
		err      error
	)
	if name != "" {
		accounts, err = s.accountModule.FindByName(ctx, name)
	} else {
		accounts, err = s.accountModule.All(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list accounts failed: %w", err)
	}
	return accounts, nil
}

// UpdateAccount 将请求体覆盖到已存在的账号上并保存
func (s *AccountService) UpdateAccount(ctx context.Context, accountID int64, payload any) (*etaccount.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if _, err := account.Deserialize(payload); err != nil {
		return nil, err
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := s.accountModule.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update account failed: %w", err)
	}

	s.notify(ctx, EventAccountUpdated, account)
	return account, nil
}

// DeleteAccount 删除账号，账号不存在时视为成功
func (s *AccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	account, err := s.accountModule.Find(ctx, accountID)
	if err != nil {
		return fmt.Errorf("find account failed: %w", err)
	}
	if account == nil {
		return nil
	}
	if err := s.accountModule.Delete(ctx, account); err != nil {
		return fmt.Errorf("delete account failed: %w", err)
	}

	s.notify(ctx, EventAccountDeleted, account)
	return nil
}

// notify 发布变更通知，失败只记录日志
func (s *AccountService) notify(ctx context.Context, eventType string, account *etaccount.Account) {
	if s.publisher == nil {
		return
	}
	event := &AccountEvent{
		Type:      eventType,
		AccountID: account.ID,
		Timestamp: time.Now().Unix(),
	}
	if eventType != EventAccountDeleted {
		event.Account = account.Serialize()
	}
	if err := s.publisher.Publish(ctx, s.channel, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish account event",
			"type", eventType,
			"account_id", account.ID,
			"error", err,
		)
	}
}
