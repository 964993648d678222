// Package scenario implements the frame composer: it turns a 32-bit seed
// into a fixed, ordered list of named synthetic frames by composing the
// wire codecs bottom-up (innermost payload first, then IPv4, then
// Ethernet). All randomness is drawn from one rng.Rand in a fixed call
// order per scenario, so (seed, index) fully determines the output bytes.
package scenario

import (
	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/rng"
)

// Scenario is one generated frame with its stable identifier.
type Scenario struct {
	ID    string
	Title string
	Bytes []byte
}

// Well-known ports used by the scenarios.
const (
	portDNS  = 53
	portHTTP = 80
)

// TCP placeholder values: sequence semantics are out of scope, so every
// generated segment carries the same seq/ack/window.
const tcpWindowPlaceholder = 0xFFFF

// Generate produces the scenario list for a seed. The list order and the
// per-scenario draw order are fixed; changing either breaks every stored
// (seed, index) reference.
func Generate(seed uint32) []Scenario {
	r := rng.New(seed)

	out := make([]Scenario, 0, 6)
	out = append(out, udpDNS(r))
	out = append(out, tcpHTTP(r))
	out = append(out, icmpEcho(r))
	out = append(out, arpRequest(r))
	out = append(out, arpReply(r))
	out = append(out, legacy8023(r))
	return out
}

// Select returns the scenario at index for the seed.
func Select(seed uint32, index int) (Scenario, error) {
	all := Generate(seed)
	if index < 0 || index >= len(all) {
		return Scenario{}, core.ErrUnknownScenario
	}
	return all[index], nil
}

// udpDNS: Ethernet → IPv4 → UDP carrying a minimal DNS A query to port 53.
// Draw order: dst MAC, src MAC, src IP, dst IP, TTL, src port, query ID.
func udpDNS(r *rng.Rand) Scenario {
	dstMAC := randomUnicastMAC(r)
	srcMAC := randomUnicastMAC(r)
	srcIP := randomPrivateIPv4(r)
	dstIP := randomPrivateIPv4(r)
	ttl := uint8(r.IntN(32, 128))
	srcPort := uint16(r.IntN(1024, 65535))
	queryID := uint16(r.IntN(0, 65535))

	seg := codec.EncodeUDP(core.UDPRecord{
		SrcPort: srcPort,
		DstPort: portDNS,
		Payload: dnsQuery(queryID),
	})
	pkt := codec.EncodeIPv4(core.IPv4Record{
		TTL:      ttl,
		Protocol: codec.ProtoUDP,
		SrcIP:    srcIP,
		DstIP:    dstIP,
		Payload:  seg,
	})
	return Scenario{
		ID:    "udp-dns",
		Title: "UDP: DNS query",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  dstMAC,
			SrcMAC:  srcMAC,
			TypeLen: codec.EtherTypeIPv4,
			Payload: pkt,
		}),
	}
}

// tcpHTTP: Ethernet → IPv4 → TCP SYN towards port 80.
// Draw order: dst MAC, src MAC, src IP, dst IP, TTL, src port.
func tcpHTTP(r *rng.Rand) Scenario {
	dstMAC := randomUnicastMAC(r)
	srcMAC := randomUnicastMAC(r)
	srcIP := randomPrivateIPv4(r)
	dstIP := randomPrivateIPv4(r)
	ttl := uint8(r.IntN(32, 128))
	srcPort := uint16(r.IntN(1024, 65535))

	seg := codec.EncodeTCP(core.TCPRecord{
		SrcPort: srcPort,
		DstPort: portHTTP,
		Flags:   core.TCPFlagSYN,
		Window:  tcpWindowPlaceholder,
	})
	pkt := codec.EncodeIPv4(core.IPv4Record{
		TTL:      ttl,
		Protocol: codec.ProtoTCP,
		SrcIP:    srcIP,
		DstIP:    dstIP,
		Payload:  seg,
	})
	return Scenario{
		ID:    "tcp-http",
		Title: "TCP: HTTP connection attempt",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  dstMAC,
			SrcMAC:  srcMAC,
			TypeLen: codec.EtherTypeIPv4,
			Payload: pkt,
		}),
	}
}

// icmpEcho: Ethernet → IPv4 → ICMP echo request.
// Draw order: dst MAC, src MAC, src IP, dst IP, TTL, echo ID.
func icmpEcho(r *rng.Rand) Scenario {
	dstMAC := randomUnicastMAC(r)
	srcMAC := randomUnicastMAC(r)
	srcIP := randomPrivateIPv4(r)
	dstIP := randomPrivateIPv4(r)
	ttl := uint8(r.IntN(32, 128))
	echoID := r.IntN(0, 65535)

	payload := []byte{
		byte(echoID >> 8), byte(echoID), 0x00, 0x01, // identifier, sequence 1
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
	}
	seg := codec.EncodeICMP(core.ICMPRecord{
		Type:    core.ICMPEchoRequest,
		Payload: payload,
	})
	pkt := codec.EncodeIPv4(core.IPv4Record{
		TTL:      ttl,
		Protocol: codec.ProtoICMP,
		SrcIP:    srcIP,
		DstIP:    dstIP,
		Payload:  seg,
	})
	return Scenario{
		ID:    "icmp-echo",
		Title: "ICMP: echo request",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  dstMAC,
			SrcMAC:  srcMAC,
			TypeLen: codec.EtherTypeIPv4,
			Payload: pkt,
		}),
	}
}

// arpRequest: who-has broadcast. The Ethernet destination is the all-ones
// MAC and the target hardware address stays zero, as the protocol requires.
// Draw order: src MAC, sender IP, target IP.
func arpRequest(r *rng.Rand) Scenario {
	srcMAC := randomUnicastMAC(r)
	senderIP := randomPrivateIPv4(r)
	targetIP := randomPrivateIPv4(r)

	pkt := codec.EncodeARP(core.ARPRecord{
		Oper: core.ARPRequest,
		SHA:  srcMAC,
		SPA:  senderIP,
		TPA:  targetIP,
	})
	return Scenario{
		ID:    "arp-request",
		Title: "ARP: who-has request",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  core.BroadcastMAC,
			SrcMAC:  srcMAC,
			TypeLen: codec.EtherTypeARP,
			Payload: pkt,
		}),
	}
}

// arpReply: unicast is-at answer.
// Draw order: dst MAC (requester), src MAC (responder), sender IP, target IP.
func arpReply(r *rng.Rand) Scenario {
	dstMAC := randomUnicastMAC(r)
	srcMAC := randomUnicastMAC(r)
	senderIP := randomPrivateIPv4(r)
	targetIP := randomPrivateIPv4(r)

	pkt := codec.EncodeARP(core.ARPRecord{
		Oper: core.ARPReply,
		SHA:  srcMAC,
		SPA:  senderIP,
		THA:  dstMAC,
		TPA:  targetIP,
	})
	return Scenario{
		ID:    "arp-reply",
		Title: "ARP: is-at reply",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  dstMAC,
			SrcMAC:  srcMAC,
			TypeLen: codec.EtherTypeARP,
			Payload: pkt,
		}),
	}
}

// legacy8023: length-framed IEEE 802.3 frame; the type/len field carries
// the payload length, well below the 0x0600 EtherType threshold.
// Draw order: dst MAC, src MAC, payload length, payload bytes.
func legacy8023(r *rng.Rand) Scenario {
	dstMAC := randomUnicastMAC(r)
	srcMAC := randomUnicastMAC(r)
	n := r.IntN(46, 100)

	payload := make([]byte, n)
	for i := range payload {
		payload[i] = r.Byte()
	}
	return Scenario{
		ID:    "legacy-8023",
		Title: "Ethernet: legacy 802.3 length framing",
		Bytes: codec.EncodeEthernet(core.EthernetRecord{
			DstMAC:  dstMAC,
			SrcMAC:  srcMAC,
			TypeLen: uint16(n),
			Payload: payload,
		}),
	}
}

// randomUnicastMAC draws six bytes and clears the multicast bit of the
// first octet.
func randomUnicastMAC(r *rng.Rand) [6]byte {
	var m [6]byte
	for i := range m {
		m[i] = r.Byte()
	}
	m[0] &^= 0x01
	return m
}

// randomPrivateIPv4 picks one of the three RFC1918 blocks, then a host
// offset sized to the block. Network and broadcast addresses are avoided;
// src == dst collisions are not (known fidelity gap, left as-is).
func randomPrivateIPv4(r *rng.Rand) uint32 {
	switch r.IntN(0, 2) {
	case 0: // 10.0.0.0/8
		return 10<<24 | uint32(r.IntN(1, 1<<24-2))
	case 1: // 172.16.0.0/12
		return 172<<24 | 16<<16 | uint32(r.IntN(1, 1<<20-2))
	default: // 192.168.0.0/16
		return 192<<24 | 168<<16 | uint32(r.IntN(1, 1<<16-2))
	}
}

// dnsQuery builds a minimal A-record query for "lab.example" with the
// given transaction ID.
func dnsQuery(id uint16) []byte {
	return []byte{
		byte(id >> 8), byte(id),
		0x01, 0x00, // standard query, recursion desired
		0x00, 0x01, // one question
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x03, 'l', 'a', 'b',
		0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		0x00,
		0x00, 0x01, // type A
		0x00, 0x01, // class IN
	}
}
