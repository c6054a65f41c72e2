// Package navigation holds the slide position of a running presentation.
package navigation

import "fmt"

// Direction is the signed intent of the most recent move. It only biases
// transition motion.
type Direction int

// Directions.
const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

// String returns a short name for logs.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "none"
	}
}

// Controller owns the current slide index and last direction. Moves past
// either end are no-ops; there is no wraparound.
type Controller struct {
	length    int
	index     int
	direction Direction
}

// NewController returns a controller at index 0 with no direction for a deck
// of the given length.
func NewController(length int) (Controller, error) {
	if length < 1 {
		return Controller{}, fmt.Errorf("navigation needs at least one slide, got %d", length)
	}
	return Controller{length: length}, nil
}

// Advance moves to the next slide and reports whether it moved.
func (c *Controller) Advance() bool {
	if !c.CanAdvance() {
		return false
	}
	c.direction = Forward
	c.index++
	return true
}

// Retreat moves to the previous slide and reports whether it moved.
func (c *Controller) Retreat() bool {
	if !c.CanRetreat() {
		return false
	}
	c.direction = Backward
	c.index--
	return true
}

// CanAdvance reports whether a next slide exists.
func (c Controller) CanAdvance() bool {
	return c.index < c.length-1
}

// CanRetreat reports whether a previous slide exists.
func (c Controller) CanRetreat() bool {
	return c.index > 0
}

// Index returns the current slide index.
func (c Controller) Index() int {
	return c.index
}

// Direction returns the direction of the last successful move.
func (c Controller) Direction() Direction {
	return c.direction
}

// Len returns the deck length.
func (c Controller) Len() int {
	return c.length
}

// Progress returns (index+1)/length.
func (c Controller) Progress() float64 {
	if c.length == 0 {
		return 0
	}
	return float64(c.index+1) / float64(c.length)
}
