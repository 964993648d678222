package codec

import (
	"errors"
	"testing"

	"firestige.xyz/framelab/internal/core"
)

func TestDecodeARPRequest(t *testing.T) {
	data := []byte{
		0x00, 0x01, // htype: Ethernet
		0x08, 0x00, // ptype: IPv4
		0x06, 0x04, // hlen, plen
		0x00, 0x01, // oper: request
		0x02, 0x11, 0x22, 0x33, 0x44, 0x55, // SHA
		0x0A, 0x00, 0x00, 0x01, // SPA: 10.0.0.1
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // THA (unknown)
		0x0A, 0x00, 0x00, 0x02, // TPA: 10.0.0.2
	}

	arp, err := DecodeARP(data)
	if err != nil {
		t.Fatalf("DecodeARP failed: %v", err)
	}
	if arp.Oper != core.ARPRequest {
		t.Errorf("Oper = %d, want 1", arp.Oper)
	}
	if arp.SPA != 0x0A000001 || arp.TPA != 0x0A000002 {
		t.Errorf("SPA/TPA = %08x/%08x", arp.SPA, arp.TPA)
	}
	if arp.SHA != [6]byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55} {
		t.Errorf("unexpected SHA %v", arp.SHA)
	}
}

func TestDecodeARPBadDiscriminators(t *testing.T) {
	base := EncodeARP(core.ARPRecord{Oper: core.ARPRequest})

	mutations := []struct {
		name   string
		offset int
		value  byte
	}{
		{"htype", 1, 0x02},
		{"ptype", 2, 0x86},
		{"hlen", 4, 0x08},
		{"plen", 5, 0x10},
	}
	for _, m := range mutations {
		data := make([]byte, len(base))
		copy(data, base)
		data[m.offset] = m.value

		if _, err := DecodeARP(data); !errors.Is(err, core.ErrBadARPFormat) {
			t.Errorf("%s mutation: err = %v, want ErrBadARPFormat", m.name, err)
		}
	}
}

func TestDecodeARPTooShort(t *testing.T) {
	if _, err := DecodeARP(make([]byte, 27)); !errors.Is(err, core.ErrFrameTooShort) {
		t.Errorf("err = %v, want ErrFrameTooShort", err)
	}
}

func TestARPRoundTrip(t *testing.T) {
	in := core.ARPRecord{
		Oper: core.ARPReply,
		SHA:  [6]byte{0x02, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE},
		SPA:  0xC0A80101,
		THA:  [6]byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55},
		TPA:  0xC0A80102,
	}

	out, err := DecodeARP(EncodeARP(in))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
}
