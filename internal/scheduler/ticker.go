package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("scheduler: invalid interval")

type Tick struct {
	Seq uint64
	At  time.Time
}

// Ticker emits a Tick every interval until stopped. Delivery never blocks:
// when the consumer falls behind, ticks are counted as dropped. A Ticker is
// single-use; arm a new one after Stop.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	out      chan Tick
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	seq      uint64
	dropped  uint64
}

func NewTicker(interval time.Duration, bufferSize int) (*Ticker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Ticker{
		interval: interval,
		out:      make(chan Tick, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// C is closed once the ticker has stopped.
func (t *Ticker) C() <-chan Tick {
	return t.out
}

func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return
	}
	t.started = true
	go t.loop()
}

// Stop halts the ticker and waits for its goroutine to exit, so no tick is
// produced after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stopCh)
	started := t.started
	t.mu.Unlock()
	if !started {
		close(t.out)
		return
	}
	<-t.doneCh
}

func (t *Ticker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Ticker) loop() {
	defer close(t.doneCh)
	defer close(t.out)

	clock := time.NewTicker(t.interval)
	defer clock.Stop()
	for {
		select {
		case now := <-clock.C:
			select {
			case <-t.stopCh:
				return
			default:
			}
			t.seq++
			select {
			case t.out <- Tick{Seq: t.seq, At: now.UTC()}:
			default:
				atomic.AddUint64(&t.dropped, 1)
			}
		case <-t.stopCh:
			return
		}
	}
}
