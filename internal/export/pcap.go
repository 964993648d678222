// Package export writes generated scenarios to pcap files so students can
// open the same frames in Wireshark, and cross-checks the hand-rolled
// encoders against gopacket's decoders.
package export

import (
	"fmt"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"firestige.xyz/framelab/internal/scenario"
)

const snapLen = 65536

// WritePcap writes the scenarios to a pcap file with an Ethernet link
// type. Timestamps step by one second in scenario order so the file sorts
// stably in capture viewers.
func WritePcap(path string, scenarios []scenario.Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pcap file %s: %w", path, err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(snapLen, layers.LinkTypeEthernet); err != nil {
		return fmt.Errorf("failed to write pcap header: %w", err)
	}

	base := time.Unix(0, 0)
	for i, s := range scenarios {
		ci := gopacket.CaptureInfo{
			Timestamp:     base.Add(time.Duration(i) * time.Second),
			CaptureLength: len(s.Bytes),
			Length:        len(s.Bytes),
		}
		if err := w.WritePacket(ci, s.Bytes); err != nil {
			return fmt.Errorf("failed to write scenario %s: %w", s.ID, err)
		}
	}
	return nil
}

// CrossCheck feeds a generated frame through gopacket's Ethernet decoder
// chain and reports any decode error it finds. Used by the export command
// as a second opinion on the hand-rolled encoders.
func CrossCheck(frame []byte) error {
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if errLayer := pkt.ErrorLayer(); errLayer != nil {
		return fmt.Errorf("gopacket rejected frame: %w", errLayer.Error())
	}
	return nil
}
