package pipeline

// RunStats tracks aggregate counters for one batch invocation.
type RunStats struct {
	Total     int
	Written   int
	Failed    int
	Cancelled int
}

// OK reports whether the run should exit zero: nothing failed. A fully
// cancelled run is a clean no-op, not a failure.
func (s RunStats) OK() bool { return s.Failed == 0 }
