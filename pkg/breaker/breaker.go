package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

type Breaker interface {
	Call(fn func() error) error
	Reset()
}

type breaker struct {
	mu sync.Mutex
	// closed - pass, open - fail fast, halfOpen - pass until first failure
	state state
	// sliding window of the last windowSize call outcomes
	window []bool
	pos    int
	// share of failed calls in the window that opens the breaker
	failRate float64
	// how long the breaker stays open before probing
	cooldown time.Duration
	openedAt time.Time
	// consecutive successes in halfOpen needed to close again
	recoverAfter int
	successes    int
}

func New(windowSize int, cooldown time.Duration, failRate float64, recoverAfter int) Breaker {
	return &breaker{
		state:        closed,
		window:       make([]bool, windowSize),
		failRate:     failRate,
		cooldown:     cooldown,
		recoverAfter: recoverAfter,
	}
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.openedAt) <= b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	if b.state == halfOpen {
		if err != nil {
			b.state = open
			b.successes = 0
			b.openedAt = time.Now()
		} else {
			b.successes++
			if b.successes > b.recoverAfter {
				b.Reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.failRate {
		b.state = open
		b.successes = 0
		b.openedAt = time.Now()
	}

	return err
}

func (b *breaker) Reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos = 0
	b.successes = 0
	b.state = closed
}
