package ir

// RangeTableEntry describes one named relation in a range table:
// a display alias and the ordered attribute names of the relation.
type RangeTableEntry struct {
	Alias   string   `json:"alias" yaml:"alias"`
	Columns []string `json:"columns" yaml:"columns"`
}

// AttributeName resolves a 1-based attribute number to its name.
// Attribute numbers outside the entry's columns render as "?", the
// same convention used for synthetic tuple slots.
func (e RangeTableEntry) AttributeName(attno int) string {
	if attno < 1 || attno > len(e.Columns) {
		return "?"
	}
	return e.Columns[attno-1]
}

// RangeTable is an ordered sequence of range table entries.
// Lookups are 1-based, matching PostgreSQL varno semantics.
type RangeTable []RangeTableEntry

// Fetch returns the entry for a 1-based varno.
// Returns ok=false for varno < 1 or varno > len; index 0 is never valid.
func (rt RangeTable) Fetch(varno int) (RangeTableEntry, bool) {
	if varno < 1 || varno > len(rt) {
		return RangeTableEntry{}, false
	}
	return rt[varno-1], true
}
