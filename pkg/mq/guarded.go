package mq

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/pkg/circuitbreaker"
)

// GuardedPublisher 带熔断的发布者
// Broker连续失败后在冷却期内直接跳过发布，菜单操作不必每次等待超时
type GuardedPublisher struct {
	next    EventPublisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedPublisher 包装next，连续失败threshold次后熔断cooldown时长
func NewGuardedPublisher(next EventPublisher, threshold uint32, cooldown time.Duration, log zerolog.Logger) *GuardedPublisher {
	breaker := circuitbreaker.New("event-publisher", circuitbreaker.Config{
		FailureThreshold: threshold,
		Cooldown:         cooldown,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("circuit breaker state changed")
		},
	})
	return &GuardedPublisher{next: next, breaker: breaker}
}

// Publish 熔断器打开时返回circuitbreaker.ErrOpenState
func (p *GuardedPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	return p.breaker.Execute(func() error {
		return p.next.Publish(ctx, routingKey, message)
	})
}

func (p *GuardedPublisher) Close() error {
	return p.next.Close()
}
