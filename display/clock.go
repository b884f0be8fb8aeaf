package display

import "time"

// Clock abstracts wall time and tickers so the polling schedule can be
// driven manually in tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the minimal ticker surface the poller needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

// SystemClock is the wall-clock Clock used outside tests.
var SystemClock Clock = realClock{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }
