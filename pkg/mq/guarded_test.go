package mq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookstore-admin/pkg/circuitbreaker"
)

func TestGuardedPublisher(t *testing.T) {
	ctx := context.Background()
	inner := &fakePublisher{err: errors.New("connection reset")}
	p := NewGuardedPublisher(inner, 2, time.Minute, zerolog.Nop())

	// 前两次真正发布
	assert.Error(t, p.Publish(ctx, "book.added", nil))
	assert.Error(t, p.Publish(ctx, "book.added", nil))
	assert.Len(t, inner.published, 2)

	// 熔断后直接跳过
	err := p.Publish(ctx, "book.added", nil)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Len(t, inner.published, 2)

	assert.NoError(t, p.Close())
}
