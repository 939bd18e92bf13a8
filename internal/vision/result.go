package vision

// FindResult is the decoded answer to a Locate query.
//
// X and Y are pointers so that coordinates the model omitted stay
// distinguishable from a genuine 0; they are meaningful only when Found is
// true. Confidence is passed through exactly as the model returned it,
// normally one of "high", "medium", or "low".
type FindResult struct {
	Found       bool   `json:"found"`
	X           *int   `json:"x,omitempty"`
	Y           *int   `json:"y,omitempty"`
	Confidence  string `json:"confidence,omitempty"`
	Description string `json:"description,omitempty"`

	// Element is the query text the coordinate answers. The client fills it
	// in when the model's reply omits it, so callers can always recover what
	// was searched for.
	Element string `json:"element"`
}
