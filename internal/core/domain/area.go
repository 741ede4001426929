package domain

// AreaEntry is the computed area of one shape in a sequence.
type AreaEntry struct {
	// Index is the shape's position in the input sequence.
	Index int `json:"index"`

	Kind ShapeKind `json:"kind"`

	// Description is the shape's String form.
	Description string `json:"description"`

	Area float64 `json:"area"`

	Shape Shape `json:"-"`
}

// AreaReport lists per-shape areas and their sum.
type AreaReport struct {
	Entries []AreaEntry `json:"entries"`
	Total   float64     `json:"total"`
}
