package models

// Sequence is one row of the business-number counter table.
// Stem is prefix + yyyymmdd, e.g. "TR20260115"; LastValue is the highest
// suffix handed out for that stem.
type Sequence struct {
	Stem      string `json:"stem" db:"stem"`
	LastValue int64  `json:"lastValue" db:"last_value"`
}
