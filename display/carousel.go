package display

import (
	"context"
	"sync"
	"time"
)

const (
	// ScrollStep is the fixed pixel increment for both auto-advance
	// and the manual navigation buttons.
	ScrollStep = 320.0

	// AutoAdvanceInterval is how often the offer strip advances on its
	// own.
	AutoAdvanceInterval = 4 * time.Second

	// wrapTolerance absorbs sub-pixel rounding when deciding whether
	// the strip has reached its end.
	wrapTolerance = 2.0
)

// Carousel models the horizontal offer strip: a scroll offset over a
// total content width seen through a viewport. Offsets grow to the
// right in LTR and to the left (negative) in RTL, matching how the
// rendering surface reports them.
type Carousel struct {
	mu       sync.Mutex
	offset   float64
	viewport float64
	total    float64
	rtl      bool
}

func NewCarousel(viewport, total float64) *Carousel {
	return &Carousel{viewport: viewport, total: total}
}

// SetRTL switches reading direction. The offset resets to the start.
func (c *Carousel) SetRTL(rtl bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rtl = rtl
	c.offset = 0
}

// Resize updates the measured geometry, clamping the current offset
// into the new range.
func (c *Carousel) Resize(viewport, total float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = viewport
	c.total = total
	c.offset = c.clamp(c.offset)
}

// Offset returns the current scroll position.
func (c *Carousel) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Advance is the auto-advance tick: scroll one step in reading
// direction, wrapping to the start once the end is visible.
func (c *Carousel) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.atEnd() {
		c.offset = 0
		return
	}
	c.offset = c.clamp(c.offset + c.direction()*ScrollStep)
}

// Next scrolls one step forward in reading direction. No wrap: the
// manual buttons stop at the ends.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = c.clamp(c.offset + c.direction()*ScrollStep)
}

// Prev scrolls one step backward in reading direction.
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = c.clamp(c.offset - c.direction()*ScrollStep)
}

// AutoAdvance runs Advance on the fixed interval until ctx is done.
func (c *Carousel) AutoAdvance(ctx context.Context, clock Clock) {
	if clock == nil {
		clock = SystemClock
	}
	t := clock.NewTicker(AutoAdvanceInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			c.Advance()
		}
	}
}

// direction is +1 for LTR and -1 for RTL, keeping "next" aligned with
// reading direction on screen.
func (c *Carousel) direction() float64 {
	if c.rtl {
		return -1
	}
	return 1
}

func (c *Carousel) atEnd() bool {
	scrolled := c.offset
	if c.rtl {
		scrolled = -c.offset
	}
	return scrolled+c.viewport >= c.total-wrapTolerance
}

func (c *Carousel) clamp(offset float64) float64 {
	maxScroll := c.total - c.viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if c.rtl {
		if offset < -maxScroll {
			return -maxScroll
		}
		if offset > 0 {
			return 0
		}
		return offset
	}
	if offset > maxScroll {
		return maxScroll
	}
	if offset < 0 {
		return 0
	}
	return offset
}
