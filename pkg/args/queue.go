package args

import (
	"gitlab.com/tozd/go/errors"
)

// Delimiter separates arguments outside of quoted spans.
const Delimiter = ':'

// ErrEmptyQueue is returned when Pop is called on an exhausted queue.
var ErrEmptyQueue = errors.Base("argument queue is empty")

// EmptyQueue is the shared queue for tags without arguments.
var EmptyQueue = New("")

// Queue is a forward-only cursor over a raw argument string.
type Queue struct {
	data string
	head int
}

func New(raw string) *Queue {
	return &Queue{data: raw}
}

// Raw returns the payload the queue was built from.
func (q *Queue) Raw() string {
	return q.data
}

// Reset rewinds the cursor. An empty queue never moves, so Reset leaves it untouched
// and EmptyQueue stays safe to share.
func (q *Queue) Reset() {
	if q.data == "" {
		return
	}
	q.head = 0
}

func (q *Queue) HasNext() bool {
	return q.head < len(q.data)
}

// Peek returns the next argument without moving the cursor.
func (q *Queue) Peek() (Argument, bool) {
	if !q.HasNext() {
		return Argument{}, false
	}
	return q.next(true), true
}

// Pop removes and returns the next argument.
func (q *Queue) Pop() (Argument, error) {
	if !q.HasNext() {
		return Argument{}, errors.Errorf("popping argument at offset %d: %w", q.head, ErrEmptyQueue)
	}
	return q.next(false), nil
}

// Remaining drains the queue.
func (q *Queue) Remaining() []Argument {
	var out []Argument
	for q.HasNext() {
		out = append(out, q.next(false))
	}
	return out
}

func (q *Queue) next(rewind bool) Argument {
	start := q.head
	inQuotes := false
	quoteChar := byte(0)
	quoteStart := -1

	// quote and delimiter bytes are ASCII, so byte scanning is safe on UTF-8 input
	for q.head < len(q.data) {
		c := q.data[q.head]

		if c == '\'' || c == '"' {
			if !inQuotes {
				inQuotes = true
				quoteChar = c
				quoteStart = q.head
			} else if c == quoteChar {
				inQuotes = false
			}
		}

		if c == Delimiter && !inQuotes {
			break
		}

		q.head++
	}

	value := q.data[start:q.head]

	if quoteStart == start && !inQuotes && q.head-start >= 2 && q.data[q.head-1] == quoteChar {
		value = q.data[start+1 : q.head-1]
	}

	if rewind {
		q.head = start
	} else if q.head < len(q.data) {
		q.head++
	}

	return Argument{value: value}
}
