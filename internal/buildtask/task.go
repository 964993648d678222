package buildtask

import (
	"fmt"

	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/rng"
)

// TaskIDs lists the build tasks in generation order. Like the analyze
// scenarios, all tasks draw from one PRNG in this fixed order, so
// (seed, taskID) fully determines a task's reference bytes.
var TaskIDs = []string{"ipv4-basic", "udp-dns", "arp-request"}

// Load generates the build task named by taskID for the seed: its field
// defaults and the reference frame encoded from them.
func Load(seed uint32, taskID string) (core.BuildTask, error) {
	r := rng.New(seed)

	for _, id := range TaskIDs {
		defaults := taskDefaults(r, id)
		if id != taskID {
			continue
		}
		ref, invalid := Compose(formFromDefaults(defaults))
		if len(invalid) > 0 {
			// Generator ranges always fit their containers; a bad
			// default is a programming error, not user input.
			return core.BuildTask{}, fmt.Errorf("framelab: task %s defaults invalid: %v", id, invalid)
		}
		return core.BuildTask{ID: id, Reference: ref, FieldDefaults: defaults}, nil
	}
	return core.BuildTask{}, core.ErrUnknownTask
}

// taskDefaults draws the default field values for one task. Draw order per
// task is fixed; every task's draws happen even when a later task is
// selected, keeping the stream aligned.
func taskDefaults(r *rng.Rand, id string) map[string]string {
	switch id {
	case "ipv4-basic":
		return map[string]string{
			"dst_mac":  codec.FormatMAC(randomUnicastMAC(r)),
			"src_mac":  codec.FormatMAC(randomUnicastMAC(r)),
			"eth_type": codec.FormatEtherType(codec.EtherTypeIPv4),
			"src_ip":   codec.FormatIPv4(randomPrivateIPv4(r)),
			"dst_ip":   codec.FormatIPv4(randomPrivateIPv4(r)),
			"ttl":      fmt.Sprintf("%d", r.IntN(32, 128)),
		}
	case "udp-dns":
		return map[string]string{
			"dst_mac":  codec.FormatMAC(randomUnicastMAC(r)),
			"src_mac":  codec.FormatMAC(randomUnicastMAC(r)),
			"eth_type": codec.FormatEtherType(codec.EtherTypeIPv4),
			"src_ip":   codec.FormatIPv4(randomPrivateIPv4(r)),
			"dst_ip":   codec.FormatIPv4(randomPrivateIPv4(r)),
			"ttl":      fmt.Sprintf("%d", r.IntN(32, 128)),
			"protocol": fmt.Sprintf("%d", codec.ProtoUDP),
			"src_port": fmt.Sprintf("%d", r.IntN(1024, 65535)),
			"dst_port": "53",
		}
	case "arp-request":
		return map[string]string{
			"dst_mac":   codec.FormatMAC(core.BroadcastMAC),
			"src_mac":   codec.FormatMAC(randomUnicastMAC(r)),
			"eth_type":  codec.FormatEtherType(codec.EtherTypeARP),
			"arp_oper":  "1",
			"sender_ip": codec.FormatIPv4(randomPrivateIPv4(r)),
			"target_ip": codec.FormatIPv4(randomPrivateIPv4(r)),
		}
	}
	return nil
}

func formFromDefaults(defaults map[string]string) Form {
	f, err := DecodeForm(defaults)
	if err != nil {
		// Defaults are generated in-process; a decode failure here is a
		// programming error.
		panic(err)
	}
	return f
}

func randomUnicastMAC(r *rng.Rand) [6]byte {
	var m [6]byte
	for i := range m {
		m[i] = r.Byte()
	}
	m[0] &^= 0x01
	return m
}

func randomPrivateIPv4(r *rng.Rand) uint32 {
	switch r.IntN(0, 2) {
	case 0:
		return 10<<24 | uint32(r.IntN(1, 1<<24-2))
	case 1:
		return 172<<24 | 16<<16 | uint32(r.IntN(1, 1<<20-2))
	default:
		return 192<<24 | 168<<16 | uint32(r.IntN(1, 1<<16-2))
	}
}
