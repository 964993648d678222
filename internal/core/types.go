// Package core defines the layer record types with zero external dependencies.
package core

// BroadcastMAC is the all-ones Ethernet broadcast address.
var BroadcastMAC = [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// EthernetRecord represents a decoded 14-byte Ethernet header.
type EthernetRecord struct {
	DstMAC  [6]byte
	SrcMAC  [6]byte
	TypeLen uint16 // EtherType, or a length for legacy 802.3 framing
	IsLen   bool   // true when TypeLen < 0x0600 (IEEE 802.3 length field)
	Payload []byte
}

// ARPRecord represents a decoded 28-byte ARP packet.
// Hardware/protocol types are fixed to Ethernet/IPv4 by the decoder
// (htype=1, ptype=0x0800, hlen=6, plen=4).
type ARPRecord struct {
	Oper uint16 // 1=request, 2=reply
	SHA  [6]byte
	SPA  uint32
	THA  [6]byte
	TPA  uint32
}

// IPv4Record represents a decoded IPv4 header plus its payload slice.
// Addresses are stored as big-endian uint32 (a<<24|b<<16|c<<8|d).
type IPv4Record struct {
	IHL        uint8 // header length in 32-bit words, 5..15
	TotalLen   uint16
	ID         uint16
	TTL        uint8
	Protocol   uint8
	Checksum   uint16
	ChecksumOK bool
	SrcIP      uint32
	DstIP      uint32
	Payload    []byte // bytes between IHL*4 and TotalLen
}

// UDPRecord represents a decoded 8-byte UDP header plus payload.
// The checksum field is carried verbatim; it is always written as zero by
// the encoder and never validated (deliberate v1 simplification).
type UDPRecord struct {
	SrcPort  uint16
	DstPort  uint16
	Length   uint16
	Checksum uint16
	Payload  []byte
}

// TCPRecord represents a simplified 20-byte TCP header plus payload.
// Ports and flags are meaningful; seq/ack/window are fixed placeholders and
// the data offset is pinned at 5 words. Checksum is zero, never validated.
type TCPRecord struct {
	SrcPort  uint16
	DstPort  uint16
	Seq      uint32
	Ack      uint32
	Flags    uint8 // lower 6 bits: URG ACK PSH RST SYN FIN
	Window   uint16
	Checksum uint16
	Payload  []byte
}

// ICMPRecord represents a decoded ICMP segment (4-byte header + payload).
type ICMPRecord struct {
	Type       uint8 // 8=echo request, 0=echo reply
	Code       uint8
	Checksum   uint16
	ChecksumOK bool
	Payload    []byte
}

// ParsedFrame aggregates the layer records successfully decoded from one
// frame. A nil field means the layer was absent or failed its fixed-format
// check; a partially populated ParsedFrame is a valid terminal state.
type ParsedFrame struct {
	Ethernet *EthernetRecord
	ARP      *ARPRecord
	IPv4     *IPv4Record
	UDP      *UDPRecord
	TCP      *TCPRecord
	ICMP     *ICMPRecord
}

// TCP flag bits.
const (
	TCPFlagFIN = 0x01
	TCPFlagSYN = 0x02
	TCPFlagRST = 0x04
	TCPFlagPSH = 0x08
	TCPFlagACK = 0x10
	TCPFlagURG = 0x20
)

// ICMP types exercised by the lab.
const (
	ICMPEchoReply   = 0
	ICMPEchoRequest = 8
)

// ARP operations.
const (
	ARPRequest = 1
	ARPReply   = 2
)
