package output

import "github.com/openclaw/clawgrep/internal/domain"

// Collector accumulates events and applies the last-N window. With a positive
// limit it keeps a fixed-size ring so memory stays bounded no matter how many
// events match; the final event list is identical to collecting everything and
// slicing off the tail.
type Collector struct {
	limit int
	all   []domain.Event
	ring  []domain.Event
	next  int
	count int
	total int
}

// NewCollector builds a Collector. limit <= 0 keeps every event.
func NewCollector(limit int) *Collector {
	c := &Collector{limit: limit}
	if limit > 0 {
		c.ring = make([]domain.Event, limit)
	}
	return c
}

// Add appends one event in encounter order.
func (c *Collector) Add(ev domain.Event) {
	c.total++
	if c.limit <= 0 {
		c.all = append(c.all, ev)
		return
	}
	c.ring[c.next] = ev
	c.next = (c.next + 1) % c.limit
	if c.count < c.limit {
		c.count++
	}
}

// Events returns the collected events in order, windowed to the last N when a
// limit is set.
func (c *Collector) Events() []domain.Event {
	if c.limit <= 0 {
		return c.all
	}
	if c.count < c.limit {
		return c.ring[:c.count]
	}
	out := make([]domain.Event, 0, c.limit)
	out = append(out, c.ring[c.next:]...)
	return append(out, c.ring[:c.next]...)
}

// Total reports how many events were added, including any that fell out of
// the window.
func (c *Collector) Total() int {
	return c.total
}
