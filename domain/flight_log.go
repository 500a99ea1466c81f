package domain

// TextLine is one non-blank line of a text flight log split on commas.
type TextLine struct {
	Line   int      `json:"line"`
	Raw    string   `json:"raw"`
	Values []string `json:"values"`
}

// FlightLog is what a decoder hands back.
// Tabular decoders fill Columns and Rows, the text decoder fills Lines.
type FlightLog struct {
	File    string
	Columns []string
	Rows    []map[string]any
	Lines   []TextLine
}

func (l FlightLog) IsEmpty() bool {
	return len(l.Rows) == 0 && len(l.Lines) == 0
}

func (l FlightLog) IsText() bool {
	return l.Lines != nil
}
