// SPDX-License-Identifier: EPL-2.0

package ogg

// Ogg uses the non-reflected CRC-32 with polynomial 0x04c11db7, zero initial
// value and no final xor, which hash/crc32 cannot express.
const crcPoly = 0x04c11db7

var crcTable [256]uint32

func init() {
	for i := range crcTable {
		r := uint32(i) << 24
		for range 8 {
			if r&0x80000000 != 0 {
				r = r<<1 ^ crcPoly
			} else {
				r <<= 1
			}
		}
		crcTable[i] = r
	}
}

func crcUpdate(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}

// pageCRC computes the checksum of an encoded page with its CRC field treated
// as zero.
func pageCRC(header, body []byte) uint32 {
	var zero [4]byte
	crc := crcUpdate(0, header[:22])
	crc = crcUpdate(crc, zero[:])
	crc = crcUpdate(crc, header[26:])
	return crcUpdate(crc, body)
}
