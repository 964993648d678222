// Package codec implements the wire codecs for the lab's protocol set:
// address and checksum primitives plus encode/decode for Ethernet, ARP,
// IPv4, UDP, TCP and ICMP. All multi-byte fields are big-endian. Decoders
// fail with sentinel errors from internal/core; they never panic on
// malformed or truncated input.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"firestige.xyz/framelab/internal/core"
)

// ParseIPv4 parses a dotted-quad address into its big-endian integer form
// a<<24 | b<<16 | c<<8 | d. Input must be exactly four decimal octets in
// [0,255]; anything else yields core.ErrBadIPv4.
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, core.ErrBadIPv4
	}
	var v uint32
	for _, p := range parts {
		if p == "" || len(p) > 3 || !isDigits(p) {
			return 0, core.ErrBadIPv4
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return 0, core.ErrBadIPv4
		}
		v = v<<8 | uint32(n)
	}
	return v, nil
}

// FormatIPv4 renders a big-endian integer address as a dotted quad.
func FormatIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// ParseMAC parses a colon- or dash-separated MAC address, case-insensitive,
// exactly six hex pairs. Mixed separators are rejected.
func ParseMAC(s string) ([6]byte, error) {
	var m [6]byte
	sep := ":"
	if strings.Contains(s, "-") {
		if strings.Contains(s, ":") {
			return m, core.ErrBadMAC
		}
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 6 {
		return m, core.ErrBadMAC
	}
	for i, p := range parts {
		if len(p) != 2 {
			return m, core.ErrBadMAC
		}
		n, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return m, core.ErrBadMAC
		}
		m[i] = byte(n)
	}
	return m, nil
}

// FormatMAC renders a MAC in canonical form: lowercase, colon-separated.
func FormatMAC(m [6]byte) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ParseEtherType parses a bare or 0x-prefixed hex EtherType value.
func ParseEtherType(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > 4 {
		return 0, core.ErrBadHex
	}
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, core.ErrBadHex
	}
	return uint16(n), nil
}

// FormatEtherType renders an EtherType in canonical form: 0x + 4 lowercase
// hex digits.
func FormatEtherType(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
