// SPDX-License-Identifier: EPL-2.0

// Package resample converts interleaved float PCM between sample rates as a
// stream.
//
// A Resampler is fed input frames and fills an output buffer, keeping its
// filter history between calls so consecutive calls reconstruct one
// continuous waveform. Process reports how many frames it consumed and how
// many it produced; input it did not consume must be offered again.
//
//	rs, err := resample.New(resample.QualityCubic, 2, 48000, 44100)
//	out := make([]float32, 1024*2)
//	for len(in) > 0 {
//	    consumed, produced, err := rs.Process(in, out)
//	    if err != nil {
//	        return err
//	    }
//	    use(out[:produced*2])
//	    in = in[consumed*2:]
//	}
//
// # Draining
//
// Every resampler lags its input. InputLatency is the number of silent frames
// that must be pushed after the last real frame so every output frame that
// depends on real input comes out.
//
// # Qualities
//
//   - QualityCubic: Catmull-Rom interpolation with a one-pole low-pass filter
//     when downsampling. Two frames of latency.
//   - QualityHigh: polyphase FIR from github.com/tphakala/go-audio-resampling.
//
// Neither implementation is safe for concurrent use.
package resample
