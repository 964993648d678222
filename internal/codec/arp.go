package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

// ARPLen is the fixed size of an Ethernet/IPv4 ARP packet.
const ARPLen = 28

// DecodeARP decodes a 28-byte ARP packet. The lab is fixed to Ethernet/IPv4
// resolution: htype=1, ptype=0x0800, hlen=6, plen=4 are required
// discriminators and anything else fails with core.ErrBadARPFormat.
func DecodeARP(b []byte) (core.ARPRecord, error) {
	if len(b) < ARPLen {
		return core.ARPRecord{}, core.ErrFrameTooShort
	}
	htype := binary.BigEndian.Uint16(b[0:2])
	ptype := binary.BigEndian.Uint16(b[2:4])
	if htype != 1 || ptype != EtherTypeIPv4 || b[4] != 6 || b[5] != 4 {
		return core.ARPRecord{}, core.ErrBadARPFormat
	}
	arp := core.ARPRecord{
		Oper: binary.BigEndian.Uint16(b[6:8]),
	}
	copy(arp.SHA[:], b[8:14])
	arp.SPA = binary.BigEndian.Uint32(b[14:18])
	copy(arp.THA[:], b[18:24])
	arp.TPA = binary.BigEndian.Uint32(b[24:28])
	return arp, nil
}

// EncodeARP encodes the record into a fresh 28-byte buffer with the fixed
// Ethernet/IPv4 discriminators.
func EncodeARP(arp core.ARPRecord) []byte {
	b := make([]byte, ARPLen)
	binary.BigEndian.PutUint16(b[0:2], 1)
	binary.BigEndian.PutUint16(b[2:4], EtherTypeIPv4)
	b[4] = 6
	b[5] = 4
	binary.BigEndian.PutUint16(b[6:8], arp.Oper)
	copy(b[8:14], arp.SHA[:])
	binary.BigEndian.PutUint32(b[14:18], arp.SPA)
	copy(b[18:24], arp.THA[:])
	binary.BigEndian.PutUint32(b[24:28], arp.TPA)
	return b
}
