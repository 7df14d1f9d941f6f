// Package circuitbreaker 熔断器
//
// 三种状态：
//   - CLOSED：正常放行，统计连续失败次数，达到阈值转为OPEN
//   - OPEN：直接返回ErrOpenState，冷却时间过后转为HALF_OPEN
//   - HALF_OPEN：只放行一个探测请求，成功转为CLOSED，失败转回OPEN
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时的快速失败错误
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// FailureThreshold 连续失败多少次后打开，0按1处理
	FailureThreshold uint32

	// Cooldown OPEN状态持续时间
	Cooldown time.Duration

	// OnStateChange 状态变化回调（在锁内调用，不要在回调里访问熔断器）
	OnStateChange func(name string, from, to State)
}

// CircuitBreaker 熔断器，可并发使用
type CircuitBreaker struct {
	name      string
	threshold uint32
	cooldown  time.Duration
	onChange  func(name string, from, to State)
	now       func() time.Time

	mu          sync.Mutex
	state       State
	generation  uint64 // 每次状态切换递增，丢弃旧状态下发出的请求结果
	failures    uint32 // 连续失败数
	openedUntil time.Time
	probing     bool // HALF_OPEN下已有探测请求在执行
}

// New 创建熔断器
func New(name string, cfg Config) *CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}
	return &CircuitBreaker{
		name:      name,
		threshold: threshold,
		cooldown:  cfg.Cooldown,
		onChange:  cfg.OnStateChange,
		now:       time.Now,
	}
}

// Execute 在熔断器保护下执行req
// 熔断器打开时不调用req，直接返回ErrOpenState
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = req()
	cb.afterRequest(generation, err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.currentState()
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.currentState() {
	case StateOpen:
		return cb.generation, ErrOpenState
	case StateHalfOpen:
		if cb.probing {
			return cb.generation, ErrOpenState
		}
		cb.probing = true
	}
	return cb.generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.currentState()
	if cb.generation != before {
		return
	}

	if success {
		cb.failures = 0
		if state == StateHalfOpen {
			cb.setState(StateClosed)
		}
		return
	}

	cb.failures++
	switch state {
	case StateClosed:
		if cb.failures >= cb.threshold {
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		cb.setState(StateOpen)
	}
}

// currentState OPEN冷却结束时转为HALF_OPEN，调用方持有锁
func (cb *CircuitBreaker) currentState() State {
	if cb.state == StateOpen && !cb.now().Before(cb.openedUntil) {
		cb.setState(StateHalfOpen)
	}
	return cb.state
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.generation++
	cb.failures = 0
	cb.probing = false
	if state == StateOpen {
		cb.openedUntil = cb.now().Add(cb.cooldown)
	}

	if cb.onChange != nil {
		cb.onChange(cb.name, prev, state)
	}
}
