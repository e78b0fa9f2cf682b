// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Stereo presents a mono or stereo Source as stereo. Mono samples are
// copied to both channels.
type Stereo struct {
	src Source
	tmp []int16
}

func NewStereo(src Source) (*Stereo, error) {
	if c := src.Channels(); c != 1 && c != 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, c)
	}

	return &Stereo{src: src}, nil
}

func (s *Stereo) SampleRate() int { return s.src.SampleRate() }
func (s *Stereo) Channels() int   { return 2 }
func (s *Stereo) BufSize() int    { return s.src.BufSize() }

func (s *Stereo) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *Stereo) ReadPCM(dst []int16) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.src.Channels() == 2 {
		// Pass-through: read stereo directly
		return s.src.ReadPCM(dst)
	}

	frames := len(dst) / 2
	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(s.tmp) < frames {
		s.tmp = make([]int16, frames)
	}
	s.tmp = s.tmp[:frames]

	n, err := s.src.ReadPCM(s.tmp)
	for i, v := range s.tmp[:n] {
		dst[2*i] = v
		dst[2*i+1] = v
	}

	return n * 2, err
}
