package hardware

import (
	"time"
)

// the shortest period the limiter will tick at. faster rates are met by
// batching events on each tick
const minPeriod = time.Millisecond

type limiter struct {
	tick *time.Ticker

	// the requested period and the resulting batch size
	period time.Duration
	batch  int
}

func newLimiter(period time.Duration) *limiter {
	l := &limiter{}
	d, n := batching(period)
	l.tick = time.NewTicker(d)
	l.period = period
	l.batch = n
	return l
}

// returns the ticker duration and the number of events per tick for the
// requested period
func batching(period time.Duration) (time.Duration, int) {
	if period <= 0 {
		period = minPeriod
	}
	if period >= minPeriod {
		return period, 1
	}
	n := int((minPeriod + period - 1) / period)
	return period * time.Duration(n), n
}

// setPeriod changes the period of the limiter if necessary. Returns the number
// of events that should be processed on every tick
func (l *limiter) setPeriod(period time.Duration) int {
	if period != l.period {
		d, n := batching(period)
		l.tick.Reset(d)
		l.period = period
		l.batch = n
	}
	return l.batch
}

// wait for the next tick
func (l *limiter) wait() {
	<-l.tick.C
}

func (l *limiter) stop() {
	l.tick.Stop()
}
