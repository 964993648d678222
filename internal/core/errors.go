// Package core defines sentinel errors.
package core

import "errors"

var (
	// Frame decoding errors
	ErrFrameTooShort = errors.New("framelab: frame too short")
	ErrBadIPVersion  = errors.New("framelab: ip version is not 4")
	ErrBadHeaderLen  = errors.New("framelab: ipv4 header length out of range")
	ErrTruncated     = errors.New("framelab: buffer shorter than declared length")
	ErrBadARPFormat  = errors.New("framelab: arp is not ethernet/ipv4")

	// Address codec errors
	ErrBadMAC  = errors.New("framelab: malformed mac address")
	ErrBadIPv4 = errors.New("framelab: malformed ipv4 address")
	ErrBadHex  = errors.New("framelab: malformed hex value")

	// Task selection errors
	ErrUnknownScenario = errors.New("framelab: unknown scenario")
	ErrUnknownTask     = errors.New("framelab: unknown build task")

	// Configuration errors
	ErrConfigInvalid = errors.New("framelab: invalid configuration")
)
