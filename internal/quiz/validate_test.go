package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firestige.xyz/framelab/internal/core"
)

func macQ(expected string) core.Question {
	return core.Question{ID: "q", Kind: core.QuestionText, Format: core.AnswerMAC, Expected: expected}
}

func TestValidateMACEquivalences(t *testing.T) {
	q := macQ("aa:bb:cc:dd:ee:ff")

	assert.True(t, Validate(q, "AA:BB:CC:DD:EE:FF"))
	assert.True(t, Validate(q, "aa-bb-cc-dd-ee-ff"))
	assert.True(t, Validate(q, "aa:bb:cc:dd:ee:ff"))
	assert.True(t, Validate(q, "  aa:bb:cc:dd:ee:ff "))

	assert.False(t, Validate(q, "aa:bb:cc:dd:ee:fe"))
	assert.False(t, Validate(q, "not-a-mac"))
	assert.False(t, Validate(q, ""))
}

func TestValidateIP(t *testing.T) {
	q := core.Question{Format: core.AnswerIP, Expected: "10.0.0.1"}

	assert.True(t, Validate(q, "10.0.0.1"))
	assert.True(t, Validate(q, " 10.0.0.1\n"))
	assert.False(t, Validate(q, "10.0.0.2"))
	assert.False(t, Validate(q, "10.0.0.256"))
	assert.False(t, Validate(q, "10.0.0"))
}

func TestValidateEtherType(t *testing.T) {
	q := core.Question{Format: core.AnswerEtherType, Expected: "0x0800"}

	assert.True(t, Validate(q, "800"))
	assert.True(t, Validate(q, "0x0800"))
	assert.True(t, Validate(q, "0800"))
	assert.True(t, Validate(q, "0x800"))

	// Garbage input returns false without panicking.
	assert.False(t, Validate(q, "zzzz"))
	assert.False(t, Validate(q, ""))
	assert.False(t, Validate(q, "0x86dd"))
}

func TestValidateNum(t *testing.T) {
	q := core.Question{Format: core.AnswerNum, Expected: "64"}

	assert.True(t, Validate(q, "64"))
	assert.True(t, Validate(q, "064")) // leading zeros compare as integers
	assert.False(t, Validate(q, "65"))
	assert.False(t, Validate(q, "64x"))
	assert.False(t, Validate(q, "-64"))
	assert.False(t, Validate(q, ""))
}

func TestValidateChoiceIsExact(t *testing.T) {
	q := core.Question{
		Kind:     core.QuestionChoice,
		Format:   core.AnswerChoice,
		Expected: "Ethernet II",
		Choices:  []string{"Ethernet II", "IEEE 802.3"},
	}

	assert.True(t, Validate(q, "Ethernet II"))
	assert.False(t, Validate(q, "ethernet ii"))
	assert.False(t, Validate(q, "IEEE 802.3"))
}

func TestValidateDoesNotMutate(t *testing.T) {
	q := macQ("aa:bb:cc:dd:ee:ff")
	before := q
	Validate(q, "AA-BB-CC-DD-EE-FF")
	assert.Equal(t, before, q)
}
