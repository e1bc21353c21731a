package browse

import (
	"sync"
	"time"
)

// Debouncer откладывает вызов до паузы длиной delay. Каждый Trigger перезапускает таймер.
// После возврата из Stop или Cancel ранее переданная функция уже не будет вызвана.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		// таймер мог сработать одновременно с новым Trigger или Stop
		if d.stopped || d.seq != seq {
			return
		}
		d.timer = nil
		fn()
	})
}

// Cancel отменяет ожидающий вызов, Trigger можно вызывать дальше
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop отменяет ожидающий вызов, дальнейшие Trigger игнорируются
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
