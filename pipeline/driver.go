// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/opusdec/ogg"
	"github.com/rs/zerolog"
)

// Driver walks the pages of an Ogg file and runs every logical stream it
// finds, one after the other, into the same Sink. Pages of a second stream
// interleaved with the active one are ignored.
type Driver struct {
	sink Sink
	cfg  Config
	log  zerolog.Logger

	state  State
	ogs    *ogg.Stream
	stream *StreamDecoder

	stats Stats
}

// NewDriver creates a Driver that writes every stream to sink. It fails when
// cfg does not validate.
func NewDriver(sink Sink, cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		sink:  sink,
		cfg:   cfg,
		log:   cfg.Logger,
		state: AwaitingStream,
	}, nil
}

// State returns the state of the active stream, or AwaitingStream/Closed
// between streams.
func (d *Driver) State() State {
	if d.stream != nil {
		return d.stream.State()
	}
	return d.state
}

// Stats returns the totals of all streams so far.
func (d *Driver) Stats() Stats {
	st := d.stats
	if d.stream != nil {
		st.add(d.stream.Stats())
	}
	return st
}

// Run reads r one page at a time until it ends, then calls Finish.
func (d *Driver) Run(r io.Reader) (Stats, error) {
	pages := ogg.NewReader(r, d.cfg.ReadSize, d.cfg.ResyncBudget)

	for {
		page, err := pages.NextPage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return d.Stats(), err
		}

		if err := d.HandlePage(page); err != nil {
			return d.Stats(), err
		}
	}

	err := d.Finish()
	return d.Stats(), err
}

// HandlePage runs one page through the active stream. A BOS page starts a
// stream when none is active.
func (d *Driver) HandlePage(p *ogg.Page) error {
	d.stats.Pages++

	if d.stream == nil {
		if !p.IsBOS() {
			d.stats.IgnoredPages++
			d.log.Debug().Uint32("serial", p.Serial).Msg("page outside of a stream ignored")
			return nil
		}
		if err := d.startStream(p.Serial); err != nil {
			return err
		}
	}

	if p.Serial != d.ogs.Serial() {
		d.stats.IgnoredPages++
		d.log.Debug().Uint32("serial", p.Serial).Msg("page of another stream ignored")
		return nil
	}

	if err := d.ogs.PageIn(p); err != nil {
		return fmt.Errorf("submitting page %d: %w", p.Sequence, err)
	}

	for {
		pkt, err := d.ogs.PacketOut()
		if errors.Is(err, ogg.ErrNoPacket) {
			break
		}
		if errors.Is(err, ogg.ErrHole) {
			if err := d.stream.HandleLoss(p.GranulePos); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if err := d.stream.HandlePacket(pkt.Data, p.GranulePos); err != nil {
			return err
		}
	}

	if p.IsEOS() {
		return d.endStream(p.GranulePos)
	}

	return nil
}

// Finish drains a stream left open by a truncated input. It returns
// ErrNoStream if no stream was ever started.
func (d *Driver) Finish() error {
	if d.stream != nil {
		d.log.Warn().Msg("input ended without end of stream, draining")
		if err := d.endStream(-1); err != nil {
			return err
		}
	}

	if d.stats.Streams == 0 {
		return ErrNoStream
	}

	return nil
}

func (d *Driver) startStream(serial uint32) error {
	sd, err := NewStreamDecoder(serial, d.sink, d.cfg)
	if err != nil {
		return err
	}

	d.ogs = ogg.NewStream(serial)
	d.stream = sd
	d.log.Debug().Uint32("serial", serial).Msg("stream started")

	return nil
}

func (d *Driver) endStream(granule int64) error {
	sd := d.stream
	err := sd.Drain(granule)

	d.stats.add(sd.Stats())
	_ = sd.Close()
	d.stream = nil
	d.ogs = nil
	d.state = Closed

	if err != nil {
		return err
	}

	d.log.Info().
		Uint32("serial", sd.Serial()).
		Int64("frames", sd.LinkOut()).
		Msg("stream finished")

	return nil
}
