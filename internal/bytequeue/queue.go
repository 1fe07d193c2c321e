// Package bytequeue implements the uncompressedFile buffer from the
// compression pipeline: a byte FIFO with independent read and write
// cursors, so the pipeline can append freshly-inflated container payload
// at the back while the event decoder consumes framed objects from the
// front without an intervening copy of the whole buffer.
//
// The growth strategy is grounded on pool.ByteBuffer.Grow: small buffers
// grow by a fixed increment, larger ones by 25% of current capacity,
// rather than doubling every time.
package bytequeue

import (
	"github.com/carlosdem/vector-blf/errs"
)

// smallBufferThreshold is the capacity below which Queue grows by a fixed
// increment rather than a percentage, mirroring
// pool.ByteBuffer's BlobBufferDefaultSize cutover.
const smallBufferThreshold = 16 * 1024

// fixedGrowth is the increment used below smallBufferThreshold.
const fixedGrowth = 16 * 1024

// Queue is a growable byte FIFO with a read cursor and a write cursor
// into the same backing slice; Read and Write advance them, Rewind moves
// the read cursor back, and DropOldData shifts both down.
// Unread bytes are buf[readPos:writePos]; DropOldData reclaims the
// already-read prefix so the slice does not grow without bound.
type Queue struct {
	buf      []byte
	readPos  int
	writePos int

	// totalWritten counts every byte ever written, independent of
	// DropOldData compacting buf/writePos; it is the "bytes produced so
	// far" counter a caller uses to track progress through a stream.
	totalWritten int
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Unread returns the number of bytes available to Read/Peek.
func (q *Queue) Unread() int {
	return q.writePos - q.readPos
}

// TellR returns the current read cursor position within the backing
// buffer. DropOldData shifts this down along with the buffer it compacts.
func (q *Queue) TellR() int { return q.readPos }

// TellW returns the total number of bytes ever written to the queue.
// Unlike TellR, DropOldData never reduces this: it reports cumulative
// bytes produced, not a position in the (compactable) backing buffer.
func (q *Queue) TellW() int { return q.totalWritten }

// grow ensures buf has room for n additional bytes past writePos.
func (q *Queue) grow(n int) {
	needed := q.writePos + n
	if needed <= cap(q.buf) {
		return
	}
	newCap := cap(q.buf)
	if newCap == 0 {
		newCap = fixedGrowth
	}
	for newCap < needed {
		if newCap < smallBufferThreshold {
			newCap += fixedGrowth
		} else {
			newCap += newCap / 4
		}
	}
	grown := make([]byte, len(q.buf), newCap)
	copy(grown, q.buf)
	q.buf = grown
}

// Write appends p to the back of the queue.
func (q *Queue) Write(p []byte) {
	q.grow(len(p))
	q.buf = q.buf[:q.writePos+len(p)]
	copy(q.buf[q.writePos:], p)
	q.writePos += len(p)
	q.totalWritten += len(p)
}

// Peek returns the next n unread bytes without advancing the read cursor.
// The returned slice aliases the queue's backing array and is only valid
// until the next Write or DropOldData call.
func (q *Queue) Peek(n int) ([]byte, error) {
	if n < 0 || q.Unread() < n {
		return nil, errs.New(errs.KindTruncated, "bytequeue: not enough unread data")
	}
	return q.buf[q.readPos : q.readPos+n], nil
}

// Read returns the next n unread bytes and advances the read cursor past
// them.
func (q *Queue) Read(n int) ([]byte, error) {
	b, err := q.Peek(n)
	if err != nil {
		return nil, err
	}
	q.readPos += n
	return b, nil
}

// Rewind moves the read cursor back by n bytes, the seekg(-n) equivalent
// used when a decoder needs to re-inspect bytes it already consumed (for
// example, peeking the object header base before deciding how much of the
// object to read).
func (q *Queue) Rewind(n int) error {
	if n < 0 || q.readPos-n < 0 {
		return errs.New(errs.KindIOError, "bytequeue: rewind past start of buffer")
	}
	q.readPos -= n
	return nil
}

// DropOldData compacts the queue, discarding up to hint already-read bytes
// from the front of the backing array so it does not grow without bound
// over the life of a long read pass. It is a hint, not a guarantee: fewer
// bytes may be dropped if fewer have been read.
func (q *Queue) DropOldData(hint int) {
	drop := hint
	if drop > q.readPos {
		drop = q.readPos
	}
	if drop <= 0 {
		return
	}
	copy(q.buf, q.buf[drop:q.writePos])
	q.writePos -= drop
	q.readPos -= drop
	q.buf = q.buf[:q.writePos]
}
