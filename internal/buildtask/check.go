package buildtask

import "firestige.xyz/framelab/internal/core"

// Check re-encodes a frame from the form values and byte-compares it
// against the reference. Unparsable fields are reported before any byte
// comparison is attempted; otherwise the result carries either success,
// the two lengths when they differ, or the offset of the first mismatch.
func Check(values map[string]string, reference []byte) core.BuildResult {
	res := core.BuildResult{MismatchOffset: -1}

	f, err := DecodeForm(values)
	if err != nil {
		res.InvalidInputs = []string{"form"}
		return res
	}

	built, invalid := Compose(f)
	if len(invalid) > 0 {
		res.InvalidInputs = invalid
		return res
	}

	if len(built) != len(reference) {
		res.LengthMismatch = true
		res.WantLen = len(reference)
		res.GotLen = len(built)
		return res
	}
	for i := range built {
		if built[i] != reference[i] {
			res.MismatchOffset = i
			return res
		}
	}
	res.OK = true
	return res
}
