package domain

// AnswerStatus distinguishes a real provider completion from the degraded
// echo substituted after a provider failure.
type AnswerStatus string

const (
	StatusSuccess  AnswerStatus = "success"
	StatusFallback AnswerStatus = "fallback"
)

// Answer is the orchestrator result. Cause is set only on fallback so callers
// and tests can assert on the failure without string-matching log output.
type Answer struct {
	Text   string
	Status AnswerStatus
	Cause  error
}

func Completed(text string) *Answer {
	return &Answer{Text: text, Status: StatusSuccess}
}

func Fallback(text string, cause error) *Answer {
	return &Answer{Text: text, Status: StatusFallback, Cause: cause}
}
