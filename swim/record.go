package swim

// Record is one race-result row projected down to the fields the
// aggregations care about. Year is the source table's 8-digit date
// string and is compared lexicographically; it is never validated as
// a calendar date.
type Record struct {
	Year      string
	Meet      string
	Event     string
	Result    string
	Division  string
	Swimmer   string
	Gender    string
	BirthYear string
}

// Seconds returns the parsed race time, or false when the result is
// unusable (unparseable, zero or negative).
func (r Record) Seconds() (float64, bool) {
	return validSeconds(r.Result)
}
