package quiz

import (
	"strconv"
	"strings"

	"firestige.xyz/framelab/internal/codec"
	"firestige.xyz/framelab/internal/core"
)

// Validate reports whether a raw answer matches the question's expected
// value under the question's declared format. Unparsable input never
// matches and never panics; the caller surfaces it as a wrong answer.
func Validate(q core.Question, raw string) bool {
	switch q.Format {
	case core.AnswerMAC:
		m, err := codec.ParseMAC(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return codec.FormatMAC(m) == q.Expected

	case core.AnswerIP:
		v, err := codec.ParseIPv4(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return codec.FormatIPv4(v) == q.Expected

	case core.AnswerEtherType:
		v, err := codec.ParseEtherType(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return codec.FormatEtherType(v) == q.Expected

	case core.AnswerNum:
		s := strings.TrimSpace(raw)
		if s == "" || !allDigits(s) {
			return false
		}
		// Compare as integers so leading zeros don't defeat equality.
		got, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return false
		}
		want, err := strconv.ParseUint(q.Expected, 10, 64)
		if err != nil {
			return false
		}
		return got == want

	case core.AnswerChoice:
		return raw == q.Expected

	default:
		return false
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
