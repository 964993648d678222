// Package decoder implements the analyze pipeline: layered dispatch from
// raw frame bytes into a partial tree of decoded layer records.
package decoder

import (
	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
)

// Parse decodes Ethernet first, then dispatches by EtherType: 0x0800 leads
// to IPv4 and from there by protocol number to UDP/TCP/ICMP, 0x0806 to ARP.
// A layer that fails its length or fixed-format check terminates the
// pipeline at that point; the ParsedFrame is partial, never an error.
func Parse(b []byte) core.ParsedFrame {
	var pf core.ParsedFrame

	eth, err := codec.DecodeEthernet(b)
	if err != nil {
		return pf
	}
	pf.Ethernet = &eth

	if eth.IsLen {
		// Legacy 802.3 framing carries no EtherType to dispatch on.
		return pf
	}

	switch eth.TypeLen {
	case codec.EtherTypeARP:
		arp, err := codec.DecodeARP(eth.Payload)
		if err != nil {
			return pf
		}
		pf.ARP = &arp

	case codec.EtherTypeIPv4:
		ip, err := codec.DecodeIPv4(eth.Payload)
		if err != nil {
			return pf
		}
		pf.IPv4 = &ip

		switch ip.Protocol {
		case codec.ProtoUDP:
			if udp, err := codec.DecodeUDP(ip.Payload); err == nil {
				pf.UDP = &udp
			}
		case codec.ProtoTCP:
			if tcp, err := codec.DecodeTCP(ip.Payload); err == nil {
				pf.TCP = &tcp
			}
		case codec.ProtoICMP:
			if icmp, err := codec.DecodeICMP(ip.Payload); err == nil {
				pf.ICMP = &icmp
			}
		}
	}
	return pf
}
