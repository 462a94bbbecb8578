package selection

// Target is the raw selection state read from the command line.
type Target struct {
	File      string // document path as given by the user
	Lines     string // line spec, empty when nothing is selected
	ZeroBased bool   // Lines holds editor indices rather than line numbers
}

// Selection is a document and the 1-based lines selected in it.
type Selection struct {
	File  string
	Lines LineRange
}

// Read returns the selection described by t. The bool is false when there is
// no document or no line range. A malformed line spec is an error.
func Read(t Target) (Selection, bool, error) {
	if t.File == "" || t.Lines == "" {
		return Selection{}, false, nil
	}

	parse := Parse
	if t.ZeroBased {
		parse = ParseZeroBased
	}
	r, err := parse(t.Lines)
	if err != nil {
		return Selection{}, false, err
	}
	return Selection{File: t.File, Lines: r}, true, nil
}
