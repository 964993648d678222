package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

// ICMPHeaderLen is the type+code+checksum header preceding the payload.
const ICMPHeaderLen = 4

// DecodeICMP decodes an ICMP segment. The checksum covers the whole
// segment; it is recomputed with the field zeroed and exposed as ChecksumOK.
func DecodeICMP(b []byte) (core.ICMPRecord, error) {
	if len(b) < ICMPHeaderLen {
		return core.ICMPRecord{}, core.ErrFrameTooShort
	}
	icmp := core.ICMPRecord{
		Type:     b[0],
		Code:     b[1],
		Checksum: binary.BigEndian.Uint16(b[2:4]),
		Payload:  b[ICMPHeaderLen:],
	}
	seg := make([]byte, len(b))
	copy(seg, b)
	seg[2], seg[3] = 0, 0
	icmp.ChecksumOK = Checksum(seg) == icmp.Checksum
	return icmp, nil
}

// EncodeICMP encodes the segment and fills in the checksum over all of it.
func EncodeICMP(icmp core.ICMPRecord) []byte {
	b := make([]byte, ICMPHeaderLen+len(icmp.Payload))
	b[0] = icmp.Type
	b[1] = icmp.Code
	copy(b[ICMPHeaderLen:], icmp.Payload)
	binary.BigEndian.PutUint16(b[2:4], Checksum(b))
	return b
}
