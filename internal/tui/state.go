package tui

// ViewState is the dashboard's current mode.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateError
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
