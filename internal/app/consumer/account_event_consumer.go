package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/atomic"

	"oip/account/internal/app/domains/services/svaccount"
	"oip/account/internal/app/pkg/logger"
)

// EventSource 账号变更通知来源（Redis Pub/Sub 实现）
type EventSource interface {
	Listen(ctx context.Context, channel string, handle func(ctx context.Context, payload string)) error
}

// EventHandler 处理一条已解析的账号变更通知
type EventHandler func(ctx context.Context, event *svaccount.AccountEvent) error

// AccountEventConsumer 账号变更通知消费者
// 职责：
// 1. 订阅账号变更 channel
// 2. 解析并校验通知消息
// 3. 交给 EventHandler 处理，默认只记录审计日志
type AccountEventConsumer struct {
	source  EventSource
	channel string
	handler EventHandler
	logger  logger.Logger

	running  *atomic.Bool
	handled  *atomic.Int64
	rejected *atomic.Int64
}

// NewAccountEventConsumer 创建消费者实例，handler 为 nil 时只记录日志
func NewAccountEventConsumer(source EventSource, channel string, handler EventHandler, log logger.Logger) *AccountEventConsumer {
	c := &AccountEventConsumer{
		source:   source,
		channel:  channel,
		handler:  handler,
		logger:   log,
		running:  atomic.NewBool(false),
		handled:  atomic.NewInt64(0),
		rejected: atomic.NewInt64(0),
	}
	if c.handler == nil {
		c.handler = c.logEvent
	}
	return c
}

// Start 启动消费循环，阻塞直到 ctx 取消
func (c *AccountEventConsumer) Start(ctx context.Context) error {
	if !c.running.CAS(false, true) {
		return errors.New("account event consumer already running")
	}
	defer c.running.Store(false)

	c.logger.Info("Account event consumer started", "channel", c.channel)
	err := c.source.Listen(ctx, c.channel, c.consumeOne)
	if errors.Is(err, context.Canceled) {
		c.logger.Info("Account event consumer stopped",
			"handled", c.handled.Load(),
			"rejected", c.rejected.Load(),
		)
		return nil
	}
	return err
}

// Handled 已成功处理的消息数
func (c *AccountEventConsumer) Handled() int64 {
	return c.handled.Load()
}

// Rejected 解析或处理失败的消息数
func (c *AccountEventConsumer) Rejected() int64 {
	return c.rejected.Load()
}

// consumeOne 消费一条消息，失败只记录日志，不中断订阅
func (c *AccountEventConsumer) consumeOne(ctx context.Context, payload string) {
	event, err := parseEvent(payload)
	if err != nil {
		c.rejected.Inc()
		c.logger.WarnContext(ctx, "Failed to parse account event", "payload", payload, "error", err)
		return
	}

	if err := c.handler(ctx, event); err != nil {
		c.rejected.Inc()
		c.logger.ErrorContext(ctx, "Failed to handle account event",
			"type", event.Type,
			"account_id", event.AccountID,
			"error", err,
		)
		return
	}
	c.handled.Inc()
}

func (c *AccountEventConsumer) logEvent(ctx context.Context, event *svaccount.AccountEvent) error {
	c.logger.InfoContext(ctx, "Account event received",
		"type", event.Type,
		"account_id", event.AccountID,
		"timestamp", event.Timestamp,
	)
	return nil
}

// parseEvent 解析消息数据并校验必填字段
func parseEvent(payload string) (*svaccount.AccountEvent, error) {
	var event svaccount.AccountEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, fmt.Errorf("unmarshal account event failed: %w", err)
	}

	switch event.Type {
	case svaccount.EventAccountCreated, svaccount.EventAccountUpdated, svaccount.EventAccountDeleted:
	default:
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}
	if event.AccountID <= 0 {
		return nil, fmt.Errorf("account_id is required")
	}
	return &event, nil
}
