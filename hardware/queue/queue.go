// This file is part of dmd5620.
//
// dmd5620 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmd5620 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmd5620.  If not, see <https://www.gnu.org/licenses/>.

package queue

import (
	"errors"
	"fmt"
)

// ErrQueueFull is returned by callers that need to surface a failed Push() as
// an error.
var ErrQueueFull = errors.New("queue full")

// Queue is a fixed capacity FIFO of bytes, implemented as a ring buffer.
type Queue struct {
	data  []uint8
	head  int
	count int
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// capacity of less than one is corrected to one.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		data: make([]uint8, capacity),
	}
}

func (q *Queue) String() string {
	return fmt.Sprintf("%d/%d", q.count, len(q.data))
}

// Push adds a byte to the end of the queue. Returns false if the queue is full,
// in which case the queue is unchanged.
func (q *Queue) Push(v uint8) bool {
	if q.count == len(q.data) {
		return false
	}
	q.data[(q.head+q.count)%len(q.data)] = v
	q.count++
	return true
}

// Pop removes and returns the byte at the front of the queue. The boolean
// return value is false if the queue is empty.
func (q *Queue) Pop() (uint8, bool) {
	if q.count == 0 {
		return 0, false
	}
	v := q.data[q.head]
	q.head = (q.head + 1) % len(q.data)
	q.count--
	return v, true
}

// Peek returns the byte at the front of the queue without removing it.
func (q *Queue) Peek() (uint8, bool) {
	if q.count == 0 {
		return 0, false
	}
	return q.data[q.head], true
}

// Len returns the number of bytes in the queue.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the capacity of the queue.
func (q *Queue) Cap() int {
	return len(q.data)
}

// Full returns true if a call to Push() would fail.
func (q *Queue) Full() bool {
	return q.count == len(q.data)
}

// Empty returns true if a call to Pop() would fail.
func (q *Queue) Empty() bool {
	return q.count == 0
}

// Clear removes all bytes from the queue.
func (q *Queue) Clear() {
	q.head = 0
	q.count = 0
}
