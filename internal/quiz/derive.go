// Package quiz derives comprehension questions from parsed frames and
// validates free-form answers against them. Both halves are pure: nothing
// here mutates a ParsedFrame or a Question.
package quiz

import (
	"fmt"
	"strconv"

	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
)

var framingChoices = []string{"Ethernet II", "IEEE 802.3"}
var protocolChoices = []string{"TCP", "UDP", "ICMP", "Other"}
var icmpChoices = []string{"Echo request", "Echo reply", "Other"}
var arpOperChoices = []string{"ARP request", "ARP reply"}
var yesNoChoices = []string{"Yes", "No"}

// Derive emits up to core.MaxQuestions questions for a parsed frame, in a
// fixed priority order: Ethernet, then IPv4 with its transport
// sub-questions, then ARP. Truncation keeps the first ten in generation
// order. Every expected value is already in the canonical form the
// validator produces, so comparison is a string equality.
func Derive(pf core.ParsedFrame) []core.Question {
	qs := make([]core.Question, 0, core.MaxQuestions)

	if eth := pf.Ethernet; eth != nil {
		qs = append(qs,
			text("eth-dst", "What is the destination MAC address?", core.AnswerMAC, codec.FormatMAC(eth.DstMAC)),
			text("eth-src", "What is the source MAC address?", core.AnswerMAC, codec.FormatMAC(eth.SrcMAC)),
			choice("eth-framing", "Which framing does this frame use?", framingChoices, framingKind(eth)),
		)
		if !eth.IsLen {
			qs = append(qs, text("eth-type", "What is the EtherType?", core.AnswerEtherType, codec.FormatEtherType(eth.TypeLen)))
		}
	}

	if ip := pf.IPv4; ip != nil {
		qs = append(qs,
			text("ip-src", "What is the source IP address?", core.AnswerIP, codec.FormatIPv4(ip.SrcIP)),
			text("ip-dst", "What is the destination IP address?", core.AnswerIP, codec.FormatIPv4(ip.DstIP)),
			num("ip-ihl", "How many bytes long is the IPv4 header?", int(ip.IHL)*4),
			num("ip-len", "What is the IPv4 total length in bytes?", int(ip.TotalLen)),
			num("ip-ttl", "What is the TTL?", int(ip.TTL)),
			choice("ip-proto", "Which protocol does the IPv4 payload carry?", protocolChoices, protocolName(ip.Protocol)),
		)

		if udp := pf.UDP; udp != nil {
			qs = append(qs,
				num("udp-src", "What is the UDP source port?", int(udp.SrcPort)),
				num("udp-dst", "What is the UDP destination port?", int(udp.DstPort)),
				num("udp-len", "What is the UDP length field?", int(udp.Length)),
			)
		}
		if tcp := pf.TCP; tcp != nil {
			qs = append(qs,
				num("tcp-src", "What is the TCP source port?", int(tcp.SrcPort)),
				num("tcp-dst", "What is the TCP destination port?", int(tcp.DstPort)),
			)
		}
		if icmp := pf.ICMP; icmp != nil {
			qs = append(qs, choice("icmp-kind", "What kind of ICMP message is this?", icmpChoices, icmpKind(icmp.Type)))
		}
	}

	if arp := pf.ARP; arp != nil {
		oper := arpOperChoices[0]
		if arp.Oper == core.ARPReply {
			oper = arpOperChoices[1]
		}
		qs = append(qs,
			choice("arp-oper", "Is this an ARP request or a reply?", arpOperChoices, oper),
			text("arp-tpa", "Which IP address is being resolved (target protocol address)?", core.AnswerIP, codec.FormatIPv4(arp.TPA)),
		)
		if pf.Ethernet != nil && pf.Ethernet.DstMAC == core.BroadcastMAC {
			qs = append(qs, choice("arp-bcast", "Is this frame addressed to every station on the link?", yesNoChoices, "Yes"))
		}
	}

	if len(qs) > core.MaxQuestions {
		qs = qs[:core.MaxQuestions]
	}
	return qs
}

func text(id, prompt string, format core.AnswerFormat, expected string) core.Question {
	return core.Question{ID: id, Kind: core.QuestionText, Prompt: prompt, Format: format, Expected: expected}
}

func num(id, prompt string, v int) core.Question {
	return core.Question{ID: id, Kind: core.QuestionText, Prompt: prompt, Format: core.AnswerNum, Expected: strconv.Itoa(v)}
}

func choice(id, prompt string, choices []string, expected string) core.Question {
	return core.Question{
		ID:       id,
		Kind:     core.QuestionChoice,
		Prompt:   prompt,
		Format:   core.AnswerChoice,
		Expected: expected,
		Choices:  choices,
	}
}

func framingKind(eth *core.EthernetRecord) string {
	if eth.IsLen {
		return framingChoices[1]
	}
	return framingChoices[0]
}

func protocolName(p uint8) string {
	switch p {
	case codec.ProtoTCP:
		return "TCP"
	case codec.ProtoUDP:
		return "UDP"
	case codec.ProtoICMP:
		return "ICMP"
	default:
		return "Other"
	}
}

func icmpKind(t uint8) string {
	switch t {
	case core.ICMPEchoRequest:
		return icmpChoices[0]
	case core.ICMPEchoReply:
		return icmpChoices[1]
	default:
		return icmpChoices[2]
	}
}

// PermalinkText is the payload encoded into worksheet QR codes; it names
// the (seed, scenario) pair a printed sheet was generated from.
func PermalinkText(seed uint32, index int) string {
	return fmt.Sprintf("framelab://quiz?seed=%d&scenario=%d", seed, index)
}
