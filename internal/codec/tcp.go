package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

// TCPHeaderLen is the simplified fixed TCP header size: the data offset is
// pinned at 5 words, so no options are ever encoded or decoded.
const TCPHeaderLen = 20

// DecodeTCP decodes a simplified 20-byte TCP header. Ports and flags are
// the meaningful fields; seq/ack/window are carried verbatim and the
// checksum is never validated.
func DecodeTCP(b []byte) (core.TCPRecord, error) {
	if len(b) < TCPHeaderLen {
		return core.TCPRecord{}, core.ErrFrameTooShort
	}
	tcp := core.TCPRecord{
		SrcPort:  binary.BigEndian.Uint16(b[0:2]),
		DstPort:  binary.BigEndian.Uint16(b[2:4]),
		Seq:      binary.BigEndian.Uint32(b[4:8]),
		Ack:      binary.BigEndian.Uint32(b[8:12]),
		Flags:    b[13] & 0x3F,
		Window:   binary.BigEndian.Uint16(b[14:16]),
		Checksum: binary.BigEndian.Uint16(b[16:18]),
	}
	dataOffset := int(b[12]>>4) * 4
	if dataOffset < TCPHeaderLen || dataOffset > len(b) {
		return tcp, core.ErrBadHeaderLen
	}
	tcp.Payload = b[dataOffset:]
	return tcp, nil
}

// EncodeTCP encodes the record with data offset 5 and a zero checksum.
func EncodeTCP(tcp core.TCPRecord) []byte {
	b := make([]byte, TCPHeaderLen+len(tcp.Payload))
	binary.BigEndian.PutUint16(b[0:2], tcp.SrcPort)
	binary.BigEndian.PutUint16(b[2:4], tcp.DstPort)
	binary.BigEndian.PutUint32(b[4:8], tcp.Seq)
	binary.BigEndian.PutUint32(b[8:12], tcp.Ack)
	b[12] = 5 << 4
	b[13] = tcp.Flags & 0x3F
	binary.BigEndian.PutUint16(b[14:16], tcp.Window)
	// checksum stays zero
	copy(b[TCPHeaderLen:], tcp.Payload)
	return b
}
