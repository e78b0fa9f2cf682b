// SPDX-License-Identifier: EPL-2.0

// Package ogg provides a pure Go Ogg demultiplexer.
//
// The package is split the same way libogg is:
//   - Sync accepts raw bytes in arbitrary chunks and returns whole pages,
//     skipping garbage and pages with a bad checksum.
//   - Stream accepts the pages of one logical bitstream and returns whole
//     packets, reassembling packets that span several pages and reporting
//     holes in the page sequence.
//   - Reader glues a Sync to an io.Reader, reading fixed-size chunks until a
//     page is available.
//
// # Reading Pages
//
//	rd := ogg.NewReader(file, 4096, 1<<20)
//	for {
//	    page, err := rd.NextPage()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use page
//	}
//
// # Reading Packets
//
//	st := ogg.NewStream(page.Serial)
//	if err := st.PageIn(page); err != nil {
//	    return err
//	}
//	for {
//	    pkt, err := st.PacketOut()
//	    if err == ogg.ErrNoPacket {
//	        break
//	    }
//	    if err == ogg.ErrHole {
//	        // one or more packets were lost
//	        continue
//	    }
//	    // use pkt.Data
//	}
//
// # Resynchronisation
//
// Malformed input is not fatal by itself: Sync drops bytes until the next
// "OggS" capture pattern with a valid checksum. Reader bounds this search with
// a byte budget and returns ErrUnparseable once more than budget bytes were
// discarded without finding a page.
package ogg
