package domain

// Outcome classifies the result of a single decode request.
type Outcome string

// Defines the recorded decode outcomes.
const (
	OutcomeDecoded          Outcome = "decoded"
	OutcomeInvalidCharacter Outcome = "invalid_character"
	OutcomeRejected         Outcome = "rejected"
)

// DecodeStats is a point-in-time view of decode counters.
type DecodeStats struct {
	Decoded          uint64
	InvalidCharacter uint64
	Rejected         uint64
	BytesProduced    uint64
}

// Total returns the number of recorded requests.
func (s DecodeStats) Total() uint64 {
	return s.Decoded + s.InvalidCharacter + s.Rejected
}
