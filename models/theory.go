package models

// Theory is one unit of study content shown to participants. Theories are
// rotated least-shown-first; shown_count only ever goes up.
type Theory struct {
	ID         string `bson:"id" json:"id" yaml:"id"`
	Content    string `bson:"content" json:"content" yaml:"content"`
	ShownCount int    `bson:"shown_count" json:"shown_count" yaml:"shown_count"`
}

// TheoryCount is the shown_count projection used by the statistics endpoint.
type TheoryCount struct {
	ID         string `bson:"id" json:"id"`
	ShownCount int    `bson:"shown_count" json:"shown_count"`
}
