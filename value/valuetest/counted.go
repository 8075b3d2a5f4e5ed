// Package valuetest provides values that record how they are released, for
// testing ownership rules of containers.
package valuetest

import (
	"fmt"

	"github.com/tuannh982/valmap/value"
)

// Tracker counts Destroy calls across the values it created.
type Tracker struct {
	destroyed int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Destroyed returns the number of values released so far.
func (t *Tracker) Destroyed() int {
	return t.destroyed
}

// Int returns a tracked value equal to every other tracked value with the
// same n.
func (t *Tracker) Int(n int64) *Counted {
	return &Counted{N: n, tracker: t}
}

// Counted is an integer-like value whose Destroy is recorded by its Tracker.
// Destroying it twice panics.
type Counted struct {
	N         int64
	tracker   *Tracker
	destroyed bool
}

// IsDestroyed reports whether Destroy has been called.
func (c *Counted) IsDestroyed() bool {
	return c.destroyed
}

func (c *Counted) Hash() uint32 {
	return value.Integer(c.N).Hash()
}

func (c *Counted) Equals(other value.Value) bool {
	o, ok := other.(*Counted)
	return ok && o.N == c.N
}

func (c *Counted) Destroy() {
	if c.destroyed {
		panic(fmt.Sprintf("value %d destroyed twice", c.N))
	}
	c.destroyed = true
	c.tracker.destroyed++
}

func (c *Counted) String() string {
	return fmt.Sprintf("#%d", c.N)
}

// Collider is a value whose hash is fixed regardless of content, used to force
// every key into the same chain.
type Collider string

func (Collider) Hash() uint32 {
	return 7
}

func (c Collider) Equals(other value.Value) bool {
	o, ok := other.(Collider)
	return ok && o == c
}

func (Collider) Destroy() {}

func (c Collider) String() string {
	return string(c)
}
