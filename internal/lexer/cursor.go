package lexer

// cursor is the buffer/position component: bounded lookahead with no
// indexing past the buffer, -1 standing in for EOF.
type cursor struct {
	buffer []byte
	pos    int
}

// peek returns the byte i bytes ahead of pos, or -1 past end of buffer.
func (c *cursor) peek(i int) int {
	p := c.pos + i
	if p < 0 || p >= len(c.buffer) {
		return -1
	}
	return int(c.buffer[p])
}

// next advances the cursor by one byte and returns the new current byte
// (equivalent to advancing then peek(0)).
func (c *cursor) next() int {
	c.pos++
	return c.peek(0)
}
