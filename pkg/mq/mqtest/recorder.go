// Package mqtest 记录发布的事件,供测试断言
package mqtest

import (
	"context"
	"sync"

	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

// Recorder 实现mq.EventPublisher,只在内存中记录
type Recorder struct {
	mu     sync.Mutex
	events []Published
	Err    error // 非nil时Publish返回该错误
}

// Published 一条已发布的消息
type Published struct {
	RoutingKey string
	Event      mq.Event
}

var _ mq.EventPublisher = (*Recorder)(nil)

func (r *Recorder) Publish(_ context.Context, routingKey string, message interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, _ := message.(mq.Event)
	r.events = append(r.events, Published{RoutingKey: routingKey, Event: ev})
	return nil
}

func (r *Recorder) Close() error { return nil }

// RoutingKeys 按发布顺序返回routing key
func (r *Recorder) RoutingKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, len(r.events))
	for i, e := range r.events {
		keys[i] = e.RoutingKey
	}
	return keys
}

// Events 返回全部已发布消息的副本
func (r *Recorder) Events() []Published {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Published(nil), r.events...)
}
