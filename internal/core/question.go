package core

// QuestionKind discriminates free-text questions from multiple choice.
type QuestionKind string

const (
	QuestionText   QuestionKind = "text"
	QuestionChoice QuestionKind = "choice"
)

// AnswerFormat names the normalization rule applied to a raw answer before
// comparison. The expected value of a Question is always stored in the
// canonical form of its format.
type AnswerFormat string

const (
	AnswerMAC       AnswerFormat = "mac"       // lowercase, colon-separated
	AnswerIP        AnswerFormat = "ip"        // dotted quad
	AnswerEtherType AnswerFormat = "ethertype" // 0x + 4 lowercase hex digits
	AnswerNum       AnswerFormat = "num"       // decimal integer
	AnswerChoice    AnswerFormat = "choice"    // exact option match
)

// Question is one comprehension question derived from a parsed frame.
// Immutable after derivation.
type Question struct {
	ID       string       `json:"id" yaml:"id"`
	Kind     QuestionKind `json:"kind" yaml:"kind"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Format   AnswerFormat `json:"expectedFormat" yaml:"expectedFormat"`
	Expected string       `json:"expectedValue" yaml:"expectedValue"`
	Choices  []string     `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// MaxQuestions caps how many questions one frame may produce.
const MaxQuestions = 10

// BuildTask is a named build-mode scenario: the reference bytes the user
// must reproduce and the form field defaults shown to them.
type BuildTask struct {
	ID            string
	Reference     []byte
	FieldDefaults map[string]string
}

// BuildResult reports the outcome of checking a user-built frame against a
// reference encoding.
type BuildResult struct {
	OK bool
	// InvalidInputs lists form fields that failed to parse. When non-empty
	// no byte comparison was attempted.
	InvalidInputs []string
	// LengthMismatch is set when the encodings differ in length; WantLen
	// and GotLen carry the two lengths.
	LengthMismatch bool
	WantLen        int
	GotLen         int
	// MismatchOffset is the offset of the first differing byte, or -1.
	MismatchOffset int
}
