package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/decoder"
	"firestige.xyz/framelab/internal/scenario"
)

var (
	analyzeHex   string
	analyzeFile  string
	analyzeIndex int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Decode frame bytes into a layer summary",
	Long: `Analyze decodes a frame layer by layer and prints what it finds.
The input is either a generated scenario (--index), a hex string (--hex)
or a raw binary file (--file). Undecodable layers simply end the summary;
malformed input is never an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := analyzeInput()
		if err != nil {
			return err
		}
		printParsed(decoder.Parse(frame), len(frame))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeHex, "hex", "", "frame bytes as hex (spaces and colons ignored)")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "file containing raw frame bytes")
	analyzeCmd.Flags().IntVar(&analyzeIndex, "index", -1, "analyze a generated scenario by index")
}

func analyzeInput() ([]byte, error) {
	switch {
	case analyzeHex != "":
		clean := strings.NewReplacer(" ", "", ":", "", "\n", "").Replace(analyzeHex)
		b, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return b, nil
	case analyzeFile != "":
		return os.ReadFile(analyzeFile)
	case analyzeIndex >= 0:
		s, err := scenario.Select(effectiveSeed(), analyzeIndex)
		if err != nil {
			return nil, err
		}
		return s.Bytes, nil
	default:
		return nil, fmt.Errorf("one of --hex, --file or --index is required")
	}
}

func printParsed(pf core.ParsedFrame, total int) {
	fmt.Printf("frame: %d bytes\n", total)

	if pf.Ethernet == nil {
		fmt.Println("  no decodable Ethernet header")
		return
	}
	eth := pf.Ethernet
	framing := "Ethernet II"
	if eth.IsLen {
		framing = "IEEE 802.3 (length framing)"
	}
	fmt.Printf("ethernet: dst=%s src=%s type/len=%s (%s)\n",
		codec.FormatMAC(eth.DstMAC), codec.FormatMAC(eth.SrcMAC),
		codec.FormatEtherType(eth.TypeLen), framing)

	if arp := pf.ARP; arp != nil {
		oper := "request"
		if arp.Oper == core.ARPReply {
			oper = "reply"
		}
		fmt.Printf("arp: %s sha=%s spa=%s tha=%s tpa=%s\n",
			oper, codec.FormatMAC(arp.SHA), codec.FormatIPv4(arp.SPA),
			codec.FormatMAC(arp.THA), codec.FormatIPv4(arp.TPA))
	}

	if ip := pf.IPv4; ip != nil {
		ok := "valid"
		if !ip.ChecksumOK {
			ok = "INVALID"
		}
		fmt.Printf("ipv4: src=%s dst=%s ihl=%dB total=%d ttl=%d proto=%d checksum=%s\n",
			codec.FormatIPv4(ip.SrcIP), codec.FormatIPv4(ip.DstIP),
			int(ip.IHL)*4, ip.TotalLen, ip.TTL, ip.Protocol, ok)
	}

	if udp := pf.UDP; udp != nil {
		fmt.Printf("udp: src=%d dst=%d len=%d\n", udp.SrcPort, udp.DstPort, udp.Length)
	}
	if tcp := pf.TCP; tcp != nil {
		fmt.Printf("tcp: src=%d dst=%d flags=0x%02x\n", tcp.SrcPort, tcp.DstPort, tcp.Flags)
	}
	if icmp := pf.ICMP; icmp != nil {
		ok := "valid"
		if !icmp.ChecksumOK {
			ok = "INVALID"
		}
		fmt.Printf("icmp: type=%d code=%d checksum=%s\n", icmp.Type, icmp.Code, ok)
	}
}
