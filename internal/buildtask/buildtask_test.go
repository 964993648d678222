package buildtask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/decoder"
)

func basicForm() map[string]string {
	return map[string]string{
		"dst_mac":  "aa:aa:aa:aa:aa:aa",
		"src_mac":  "bb:bb:bb:bb:bb:bb",
		"eth_type": "0x0800",
		"src_ip":   "10.0.0.1",
		"dst_ip":   "10.0.0.2",
		"ttl":      "64",
	}
}

func TestComposeBasicIPv4Frame(t *testing.T) {
	// Ethernet + IPv4 with no L4 fields is exactly 34 bytes and carries a
	// valid header checksum.
	frame, invalid := Compose(mustForm(t, basicForm()))
	require.Empty(t, invalid)
	require.Len(t, frame, 34)

	pf := decoder.Parse(frame)
	require.NotNil(t, pf.IPv4)
	assert.True(t, pf.IPv4.ChecksumOK)
	assert.Equal(t, uint8(64), pf.IPv4.TTL)
	assert.Equal(t, uint32(0x0A000001), pf.IPv4.SrcIP)
	assert.Equal(t, uint32(0x0A000002), pf.IPv4.DstIP)
}

func TestCheckMatchingForm(t *testing.T) {
	ref, invalid := Compose(mustForm(t, basicForm()))
	require.Empty(t, invalid)

	res := Check(basicForm(), ref)
	assert.True(t, res.OK)
	assert.Empty(t, res.InvalidInputs)
	assert.Equal(t, -1, res.MismatchOffset)
}

func TestCheckInvalidInputsBeforeComparison(t *testing.T) {
	ref, _ := Compose(mustForm(t, basicForm()))

	form := basicForm()
	form["src_mac"] = "not-a-mac"
	form["src_ip"] = "10.0.0.256"

	res := Check(form, ref)
	assert.False(t, res.OK)
	assert.ElementsMatch(t, []string{"src_mac", "src_ip"}, res.InvalidInputs)
	assert.False(t, res.LengthMismatch)
	assert.Equal(t, -1, res.MismatchOffset)
}

func TestCheckReportsFirstMismatchOffset(t *testing.T) {
	ref, _ := Compose(mustForm(t, basicForm()))

	form := basicForm()
	form["dst_mac"] = "aa:aa:aa:aa:aa:ab" // differs at byte 5

	res := Check(form, ref)
	assert.False(t, res.OK)
	assert.Equal(t, 5, res.MismatchOffset)
}

func TestCheckReportsLengthMismatch(t *testing.T) {
	ref, _ := Compose(mustForm(t, basicForm()))

	form := basicForm()
	form["src_port"] = "40000"
	form["dst_port"] = "53"

	res := Check(form, ref)
	assert.False(t, res.OK)
	assert.True(t, res.LengthMismatch)
	assert.Equal(t, len(ref), res.WantLen)
	assert.Equal(t, len(ref)+8, res.GotLen)
}

func TestLoadDeterministic(t *testing.T) {
	for _, id := range TaskIDs {
		a, err := Load(321, id)
		require.NoError(t, err, id)
		b, err := Load(321, id)
		require.NoError(t, err, id)

		assert.Equal(t, a.Reference, b.Reference, id)
		assert.Equal(t, a.FieldDefaults, b.FieldDefaults, id)
	}
}

func TestLoadDefaultsReproduceReference(t *testing.T) {
	for _, id := range TaskIDs {
		task, err := Load(98765, id)
		require.NoError(t, err, id)

		res := Check(task.FieldDefaults, task.Reference)
		assert.True(t, res.OK, "task %s: defaults do not rebuild the reference", id)
	}
}

func TestLoadARPTaskIsBroadcast(t *testing.T) {
	task, err := Load(5, "arp-request")
	require.NoError(t, err)

	pf := decoder.Parse(task.Reference)
	require.NotNil(t, pf.ARP)
	assert.Equal(t, uint16(core.ARPRequest), pf.ARP.Oper)
	assert.Equal(t, core.BroadcastMAC, pf.Ethernet.DstMAC)
}

func TestLoadUnknownTask(t *testing.T) {
	_, err := Load(1, "no-such-task")
	assert.ErrorIs(t, err, core.ErrUnknownTask)
}

func mustForm(t *testing.T, values map[string]string) Form {
	t.Helper()
	f, err := DecodeForm(values)
	require.NoError(t, err)
	return f
}
