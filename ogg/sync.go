// SPDX-License-Identifier: EPL-2.0

package ogg

import "bytes"

// Sync finds page boundaries in a byte stream that arrives in arbitrary
// chunks. Bytes that cannot be part of a valid page are dropped.
type Sync struct {
	buf     []byte
	skipped int
}

// NewSync creates an empty Sync.
func NewSync() *Sync {
	return &Sync{buf: make([]byte, 0, MaxPageSize)}
}

// Write appends raw bytes. It never fails.
func (s *Sync) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Buffered reports how many bytes are waiting to be parsed.
func (s *Sync) Buffered() int { return len(s.buf) }

// Skipped reports how many bytes were dropped since the last page was
// returned.
func (s *Sync) Skipped() int { return s.skipped }

// Reset drops all buffered data.
func (s *Sync) Reset() {
	s.buf = s.buf[:0]
	s.skipped = 0
}

// PageOut returns the next whole page. It returns ErrNeedMore when the
// buffered bytes do not yet hold a complete page.
func (s *Sync) PageOut() (*Page, error) {
	for {
		if len(s.buf) == 0 {
			return nil, ErrNeedMore
		}

		if !bytes.HasPrefix(s.buf, capturePattern) {
			i := bytes.Index(s.buf, capturePattern)
			if i < 0 {
				// Keep a tail that may be the start of a split capture pattern.
				keep := min(len(s.buf), len(capturePattern)-1)
				s.discard(len(s.buf) - keep)
				if keep > 0 && !bytes.HasPrefix(capturePattern, s.buf) {
					s.discard(1)
					continue
				}
				return nil, ErrNeedMore
			}
			s.discard(i)
		}

		page, n, err := ParsePage(s.buf)
		switch err {
		case nil:
			s.consume(n)
			s.skipped = 0
			return page, nil
		case ErrShortPage:
			return nil, ErrNeedMore
		default:
			// Not a real page: step past this capture pattern and rescan.
			s.discard(1)
		}
	}
}

func (s *Sync) discard(n int) {
	s.skipped += n
	s.consume(n)
}

func (s *Sync) consume(n int) {
	s.buf = append(s.buf[:0], s.buf[n:]...)
}
