package board

// Snapshot is a Surface that keeps the last outcome it was shown.
// The HTML surface and the plain CLI listing build their output from it.
type Snapshot struct {
	Cards   []Card
	Failure string
}

// ShowCards implements Surface.
func (s *Snapshot) ShowCards(cards []Card) {
	s.Cards = cards
	s.Failure = ""
}

// ShowLoadFailure implements Surface.
func (s *Snapshot) ShowLoadFailure(message string) {
	s.Cards = nil
	s.Failure = message
}

// Failed reports whether the last load failed.
func (s *Snapshot) Failed() bool {
	return s.Failure != ""
}
