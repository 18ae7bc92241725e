package game

// turnCursor walks seats in fixed order, wrapping around. A rejected action
// calls Repeat so the same seat acts again instead of the loop rewinding a
// raw index.
type turnCursor struct {
	seats   int
	pos     int
	retries int // consecutive repeats of the current seat
}

func newTurnCursor(seats int) *turnCursor {
	return &turnCursor{seats: seats}
}

// Current returns the seat whose turn it is.
func (c *turnCursor) Current() int {
	return c.pos
}

// Advance moves to the next seat.
func (c *turnCursor) Advance() {
	c.pos = (c.pos + 1) % c.seats
	c.retries = 0
}

// Repeat keeps the current seat for another attempt.
func (c *turnCursor) Repeat() {
	c.retries++
}

// Retries returns how many times the current seat has been repeated.
func (c *turnCursor) Retries() int {
	return c.retries
}
