// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
)

// memFile is an in-memory io.WriteSeeker.
type memFile struct {
	data []byte
	pos  int64
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	m.pos = abs
	return abs, nil
}

// pipeFile accepts writes but cannot seek, like a pipe.
type pipeFile struct{ memFile }

func (*pipeFile) Seek(int64, int) (int64, error) { return 0, errors.New("illegal seek") }

// fullDisk fails every write after limit bytes.
type fullDisk struct {
	memFile
	limit int
}

func (f *fullDisk) Write(p []byte) (int, error) {
	if len(f.data)+len(p) > f.limit {
		return 0, errors.New("no space left on device")
	}
	return f.memFile.Write(p)
}
