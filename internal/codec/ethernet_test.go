package codec

import (
	"bytes"
	"errors"
	"testing"

	"firestige.xyz/framelab/internal/core"
)

func TestDecodeEthernetBasic(t *testing.T) {
	data := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, // dst
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, // src
		0x08, 0x00, // EtherType: IPv4
		0x45, 0x00, // payload
	}

	eth, err := DecodeEthernet(data)
	if err != nil {
		t.Fatalf("DecodeEthernet failed: %v", err)
	}

	if eth.DstMAC != [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55} {
		t.Errorf("unexpected DstMAC %v", eth.DstMAC)
	}
	if eth.SrcMAC != [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF} {
		t.Errorf("unexpected SrcMAC %v", eth.SrcMAC)
	}
	if eth.TypeLen != 0x0800 {
		t.Errorf("TypeLen = 0x%04x, want 0x0800", eth.TypeLen)
	}
	if eth.IsLen {
		t.Error("IsLen = true for EtherType 0x0800")
	}
	if len(eth.Payload) != 2 {
		t.Errorf("payload length = %d, want 2", len(eth.Payload))
	}
}

func TestEthernetClassification(t *testing.T) {
	frame := make([]byte, 14)

	// 0x0600 is the first Ethernet II value.
	frame[12], frame[13] = 0x06, 0x00
	eth, _ := DecodeEthernet(frame)
	if eth.IsLen {
		t.Error("0x0600 classified as length field")
	}

	// 0x05FF and below are 802.3 length fields.
	frame[12], frame[13] = 0x05, 0xFF
	eth, _ = DecodeEthernet(frame)
	if !eth.IsLen {
		t.Error("0x05ff classified as EtherType")
	}
}

func TestDecodeEthernetTooShort(t *testing.T) {
	_, err := DecodeEthernet([]byte{0x00, 0x11, 0x22})
	if !errors.Is(err, core.ErrFrameTooShort) {
		t.Errorf("err = %v, want ErrFrameTooShort", err)
	}
}

func TestEthernetRoundTrip(t *testing.T) {
	in := core.EthernetRecord{
		DstMAC:  [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		SrcMAC:  [6]byte{0x02, 0x00, 0x5E, 0x10, 0x00, 0x01},
		TypeLen: EtherTypeARP,
		Payload: []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}

	out, err := DecodeEthernet(EncodeEthernet(in))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if out.DstMAC != in.DstMAC || out.SrcMAC != in.SrcMAC || out.TypeLen != in.TypeLen {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
	if !bytes.Equal(out.Payload, in.Payload) {
		t.Errorf("payload mismatch: %x vs %x", out.Payload, in.Payload)
	}
}
