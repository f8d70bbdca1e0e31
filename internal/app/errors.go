package app

import "errors"

// Sentinel kinds for selection errors.
var (
	// ErrNoCandidates is returned when selection is asked to choose from an
	// empty candidate set. Callers must handle "no recordings available"
	// distinctly from "one recording was chosen".
	ErrNoCandidates = errors.New("no candidate recordings")

	// ErrUnknownSelection is returned when a manual override names an
	// identifier not present among the candidates. No substitute is chosen.
	ErrUnknownSelection = errors.New("manual selection not found among candidates")
)
