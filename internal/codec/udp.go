package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

// UDPHeaderLen is the fixed UDP header size.
const UDPHeaderLen = 8

// DecodeUDP decodes an 8-byte UDP header plus payload. The checksum field
// is carried through but never validated.
func DecodeUDP(b []byte) (core.UDPRecord, error) {
	if len(b) < UDPHeaderLen {
		return core.UDPRecord{}, core.ErrFrameTooShort
	}
	return core.UDPRecord{
		SrcPort:  binary.BigEndian.Uint16(b[0:2]),
		DstPort:  binary.BigEndian.Uint16(b[2:4]),
		Length:   binary.BigEndian.Uint16(b[4:6]),
		Checksum: binary.BigEndian.Uint16(b[6:8]),
		Payload:  b[UDPHeaderLen:],
	}, nil
}

// EncodeUDP encodes the record; Length is derived from the payload and the
// checksum is always written as zero (deliberately not computed).
func EncodeUDP(udp core.UDPRecord) []byte {
	b := make([]byte, UDPHeaderLen+len(udp.Payload))
	binary.BigEndian.PutUint16(b[0:2], udp.SrcPort)
	binary.BigEndian.PutUint16(b[2:4], udp.DstPort)
	binary.BigEndian.PutUint16(b[4:6], uint16(len(b)))
	// checksum stays zero
	copy(b[UDPHeaderLen:], udp.Payload)
	return b
}
