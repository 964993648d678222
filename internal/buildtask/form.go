// Package buildtask implements build mode: it generates reference frames
// for named tasks and byte-compares user-built frames against them. The
// user's form values re-enter the same codecs the generator uses, so a
// correct form reproduces the reference exactly.
package buildtask

import (
	"strconv"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
)

// Form holds the raw string values of the build-mode fields. Absent fields
// stay empty; which fields matter is decided by eth_type and the presence
// of the L4 port fields.
type Form struct {
	DstMAC   string `mapstructure:"dst_mac"`
	SrcMAC   string `mapstructure:"src_mac"`
	EthType  string `mapstructure:"eth_type"`
	SrcIP    string `mapstructure:"src_ip"`
	DstIP    string `mapstructure:"dst_ip"`
	TTL      string `mapstructure:"ttl"`
	Protocol string `mapstructure:"protocol"`
	SrcPort  string `mapstructure:"src_port"`
	DstPort  string `mapstructure:"dst_port"`
	ARPOper  string `mapstructure:"arp_oper"`
	SenderIP string `mapstructure:"sender_ip"`
	TargetIP string `mapstructure:"target_ip"`
}

// DecodeForm converts a raw field map into a Form.
func DecodeForm(values map[string]string) (Form, error) {
	var f Form
	if err := mapstructure.Decode(values, &f); err != nil {
		return Form{}, err
	}
	return f, nil
}

// Compose encodes a frame from the form. It returns the encoded bytes and
// the names of fields that failed to parse; when the invalid list is
// non-empty the bytes are nil and must not be compared.
func Compose(f Form) ([]byte, []string) {
	var invalid []string

	dstMAC := parseMACField(f.DstMAC, "dst_mac", &invalid)
	srcMAC := parseMACField(f.SrcMAC, "src_mac", &invalid)

	ethType, err := codec.ParseEtherType(f.EthType)
	if err != nil {
		invalid = append(invalid, "eth_type")
	}

	var payload []byte
	switch ethType {
	case codec.EtherTypeIPv4:
		payload = composeIPv4(f, &invalid)
	case codec.EtherTypeARP:
		payload = composeARP(f, srcMAC, &invalid)
	}

	if len(invalid) > 0 {
		return nil, invalid
	}
	return codec.EncodeEthernet(core.EthernetRecord{
		DstMAC:  dstMAC,
		SrcMAC:  srcMAC,
		TypeLen: ethType,
		Payload: payload,
	}), nil
}

func composeIPv4(f Form, invalid *[]string) []byte {
	srcIP := parseIPField(f.SrcIP, "src_ip", invalid)
	dstIP := parseIPField(f.DstIP, "dst_ip", invalid)
	ttl := parseNumField(f.TTL, "ttl", 255, invalid)

	hasPorts := f.SrcPort != "" || f.DstPort != ""
	proto := uint64(0)
	switch {
	case f.Protocol != "":
		proto = parseNumField(f.Protocol, "protocol", 255, invalid)
	case hasPorts:
		proto = codec.ProtoUDP
	}

	var seg []byte
	if hasPorts {
		srcPort := parseNumField(f.SrcPort, "src_port", 65535, invalid)
		dstPort := parseNumField(f.DstPort, "dst_port", 65535, invalid)
		switch proto {
		case codec.ProtoTCP:
			seg = codec.EncodeTCP(core.TCPRecord{
				SrcPort: uint16(srcPort),
				DstPort: uint16(dstPort),
				Flags:   core.TCPFlagSYN,
				Window:  0xFFFF,
			})
		default:
			seg = codec.EncodeUDP(core.UDPRecord{
				SrcPort: uint16(srcPort),
				DstPort: uint16(dstPort),
			})
		}
	}

	return codec.EncodeIPv4(core.IPv4Record{
		TTL:      uint8(ttl),
		Protocol: uint8(proto),
		SrcIP:    srcIP,
		DstIP:    dstIP,
		Payload:  seg,
	})
}

func composeARP(f Form, srcMAC [6]byte, invalid *[]string) []byte {
	oper := uint64(core.ARPRequest)
	if f.ARPOper != "" {
		oper = parseNumField(f.ARPOper, "arp_oper", 2, invalid)
	}
	senderIP := parseIPField(f.SenderIP, "sender_ip", invalid)
	targetIP := parseIPField(f.TargetIP, "target_ip", invalid)

	// The sender hardware address is the frame's source MAC; the target
	// hardware address stays zero (request semantics).
	return codec.EncodeARP(core.ARPRecord{
		Oper: uint16(oper),
		SHA:  srcMAC,
		SPA:  senderIP,
		TPA:  targetIP,
	})
}

func parseMACField(s, name string, invalid *[]string) [6]byte {
	m, err := codec.ParseMAC(s)
	if err != nil {
		*invalid = append(*invalid, name)
	}
	return m
}

func parseIPField(s, name string, invalid *[]string) uint32 {
	v, err := codec.ParseIPv4(s)
	if err != nil {
		*invalid = append(*invalid, name)
	}
	return v
}

func parseNumField(s, name string, max uint64, invalid *[]string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > max {
		*invalid = append(*invalid, name)
		return 0
	}
	return v
}
