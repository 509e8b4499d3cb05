package prompt

// FixedConfirmer is a deterministic Confirmer implementation for testing
// and non-interactive runs. It answers every question the same way.
type FixedConfirmer struct {
	// Answer is returned by every Confirm call.
	Answer bool

	// Error, if set, is returned by Confirm instead of an answer.
	Error error

	// Questions stores every question asked, in order.
	Questions []string
}

// NewFixedConfirmer creates a confirmer that always answers the same way.
func NewFixedConfirmer(answer bool) *FixedConfirmer {
	return &FixedConfirmer{Answer: answer}
}

// Confirm records the question and returns the configured answer.
func (f *FixedConfirmer) Confirm(question string) (bool, error) {
	f.Questions = append(f.Questions, question)

	if f.Error != nil {
		return false, f.Error
	}
	return f.Answer, nil
}
