package models

// Candidate is one line of text from a source.
type Candidate struct {
	Text   string
	Line   int    // 1-based position within the source
	Source string // Owning source name, empty for raw piped text
}

// MatchEvent is a candidate that satisfied the pattern. Start and End are the
// byte offsets of the first matched span within Candidate.Text.
type MatchEvent struct {
	Candidate Candidate
	Start     int
	End       int
}

// Before returns the text preceding the matched span.
func (m MatchEvent) Before() string {
	return m.Candidate.Text[:m.Start]
}

// Span returns the matched text.
func (m MatchEvent) Span() string {
	return m.Candidate.Text[m.Start:m.End]
}

// After returns the text following the matched span.
func (m MatchEvent) After() string {
	return m.Candidate.Text[m.End:]
}
