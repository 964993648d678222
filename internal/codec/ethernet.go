package codec

import (
	"encoding/binary"

	"firestige.xyz/framelab/internal/core"
)

const (
	// EthernetHeaderLen is the fixed header size: dst(6)+src(6)+type/len(2).
	EthernetHeaderLen = 14

	// EtherTypeIPv4 and EtherTypeARP are the two EtherTypes the lab
	// dispatches on.
	EtherTypeIPv4 = 0x0800
	EtherTypeARP  = 0x0806

	// etherTypeMin is the classification threshold: values below it are
	// IEEE 802.3 length fields, values at or above it are Ethernet II
	// EtherTypes.
	etherTypeMin = 0x0600
)

// DecodeEthernet decodes a 14-byte Ethernet header. The payload slice
// aliases the input buffer.
func DecodeEthernet(b []byte) (core.EthernetRecord, error) {
	if len(b) < EthernetHeaderLen {
		return core.EthernetRecord{}, core.ErrFrameTooShort
	}
	eth := core.EthernetRecord{}
	copy(eth.DstMAC[:], b[0:6])
	copy(eth.SrcMAC[:], b[6:12])
	eth.TypeLen = binary.BigEndian.Uint16(b[12:14])
	eth.IsLen = eth.TypeLen < etherTypeMin
	eth.Payload = b[EthernetHeaderLen:]
	return eth, nil
}

// EncodeEthernet encodes the record and its payload into a fresh buffer.
func EncodeEthernet(eth core.EthernetRecord) []byte {
	b := make([]byte, EthernetHeaderLen+len(eth.Payload))
	copy(b[0:6], eth.DstMAC[:])
	copy(b[6:12], eth.SrcMAC[:])
	binary.BigEndian.PutUint16(b[12:14], eth.TypeLen)
	copy(b[EthernetHeaderLen:], eth.Payload)
	return b
}
