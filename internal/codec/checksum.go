package codec

// Checksum computes the 16-bit ones'-complement checksum over b: big-endian
// 16-bit words are summed (an odd trailing byte is padded on the right),
// carries above bit 16 are folded back in until none remain, and the sum is
// complemented. The caller zeroes the checksum field before computing.
// The same algorithm covers IPv4 headers and whole ICMP segments.
func Checksum(b []byte) uint16 {
	var sum uint32
	for i := 0; i+1 < len(b); i += 2 {
		sum += uint32(b[i])<<8 | uint32(b[i+1])
	}
	if len(b)%2 == 1 {
		sum += uint32(b[len(b)-1]) << 8
	}
	for sum > 0xFFFF {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return ^uint16(sum)
}
