// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"fmt"
	"io"
)

const (
	// DefaultReadSize is the chunk size Reader uses when none is given.
	DefaultReadSize = 4096
	// DefaultResyncBudget is how many garbage bytes Reader tolerates between
	// two pages when no budget is given.
	DefaultResyncBudget = 1 << 20
)

// Reader pulls pages out of an io.Reader, reading readSize bytes at a time.
type Reader struct {
	src    io.Reader
	sync   *Sync
	chunk  []byte
	budget int
	eof    bool
	pages  int
}

// NewReader creates a Reader. A non-positive readSize or budget selects the
// default.
func NewReader(r io.Reader, readSize, budget int) *Reader {
	if readSize <= 0 {
		readSize = DefaultReadSize
	}
	if budget <= 0 {
		budget = DefaultResyncBudget
	}
	return &Reader{
		src:    r,
		sync:   NewSync(),
		chunk:  make([]byte, readSize),
		budget: budget,
	}
}

// Pages returns the number of pages returned so far.
func (r *Reader) Pages() int { return r.pages }

// NextPage returns the next page of the input. It returns io.EOF when the
// input is exhausted, and ErrUnparseable when more than the resync budget was
// skipped without finding a page.
func (r *Reader) NextPage() (*Page, error) {
	for {
		page, err := r.sync.PageOut()
		if err == nil {
			r.pages++
			return page, nil
		}

		if r.sync.Skipped() > r.budget {
			return nil, fmt.Errorf("%w: %d bytes without a page", ErrUnparseable, r.sync.Skipped())
		}

		if r.eof {
			return nil, io.EOF
		}

		n, err := r.src.Read(r.chunk)
		if n > 0 {
			r.sync.Write(r.chunk[:n])
		}
		if err == io.EOF {
			r.eof = true
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading ogg data: %w", err)
		}
	}
}
