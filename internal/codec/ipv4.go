package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

const (
	ipv4HeaderMinLen = 20
	ipv4HeaderMaxLen = 60

	// IP protocol numbers dispatched by the parse pipeline.
	ProtoICMP = 1
	ProtoTCP  = 6
	ProtoUDP  = 17
)

// DecodeIPv4 decodes an IPv4 header and splits header from payload at
// IHL*4 and TotalLen. The header checksum is recomputed with the checksum
// field zeroed and the result exposed as ChecksumOK.
func DecodeIPv4(b []byte) (core.IPv4Record, error) {
	if len(b) < ipv4HeaderMinLen {
		return core.IPv4Record{}, core.ErrFrameTooShort
	}
	if b[0]>>4 != 4 {
		return core.IPv4Record{}, core.ErrBadIPVersion
	}
	ihl := b[0] & 0x0F
	hdrLen := int(ihl) * 4
	if hdrLen < ipv4HeaderMinLen || hdrLen > ipv4HeaderMaxLen || hdrLen > len(b) {
		return core.IPv4Record{}, core.ErrBadHeaderLen
	}
	totalLen := binary.BigEndian.Uint16(b[2:4])
	if int(totalLen) < hdrLen || int(totalLen) > len(b) {
		return core.IPv4Record{}, core.ErrTruncated
	}

	ip := core.IPv4Record{
		IHL:      ihl,
		TotalLen: totalLen,
		ID:       binary.BigEndian.Uint16(b[4:6]),
		TTL:      b[8],
		Protocol: b[9],
		Checksum: binary.BigEndian.Uint16(b[10:12]),
		SrcIP:    binary.BigEndian.Uint32(b[12:16]),
		DstIP:    binary.BigEndian.Uint32(b[16:20]),
	}

	hdr := make([]byte, hdrLen)
	copy(hdr, b[:hdrLen])
	hdr[10], hdr[11] = 0, 0
	ip.ChecksumOK = Checksum(hdr) == ip.Checksum

	ip.Payload = b[hdrLen:totalLen]
	return ip, nil
}

// EncodeIPv4 encodes a 20-byte header (no options) plus the record payload.
// TotalLen and the header checksum are derived here; the record's values
// for those fields are ignored.
func EncodeIPv4(ip core.IPv4Record) []byte {
	b := make([]byte, ipv4HeaderMinLen+len(ip.Payload))
	b[0] = 4<<4 | 5 // version 4, IHL 5 words
	binary.BigEndian.PutUint16(b[2:4], uint16(len(b)))
	binary.BigEndian.PutUint16(b[4:6], ip.ID)
	b[8] = ip.TTL
	b[9] = ip.Protocol
	binary.BigEndian.PutUint32(b[12:16], ip.SrcIP)
	binary.BigEndian.PutUint32(b[16:20], ip.DstIP)
	binary.BigEndian.PutUint16(b[10:12], Checksum(b[:ipv4HeaderMinLen]))
	copy(b[ipv4HeaderMinLen:], ip.Payload)
	return b
}
