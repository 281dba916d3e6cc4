package result

// CountRecorder implements Recorder by discarding everything but a running
// total — the cheapest of the four modes, per spec.md §4.6's table.
type CountRecorder struct {
	count uint64
}

func NewCountRecorder() *CountRecorder { return &CountRecorder{} }

func (r *CountRecorder) RecordMatch(_ int, _ int, _ MatchedNodeType) error {
	r.count++
	return nil
}

func (r *CountRecorder) RecordValueTerminator(_ int, _ int) error { return nil }

// Count returns the number of matches recorded so far.
func (r *CountRecorder) Count() uint64 { return r.count }
