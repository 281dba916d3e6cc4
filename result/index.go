package result

// IndexRecorder emits the starting byte index of every match. Indices
// arriving here are already corrected for leading padding — the classify
// package subtracts it once, at the structural-event source (spec.md §3.4)
// — so nothing downstream needs to know about padding at all.
type IndexRecorder struct {
	sink Sink[int]
}

func NewIndexRecorder(sink Sink[int]) *IndexRecorder {
	return &IndexRecorder{sink: sink}
}

func (r *IndexRecorder) RecordMatch(index int, _ int, _ MatchedNodeType) error {
	return r.sink.Emit(index)
}

func (r *IndexRecorder) RecordValueTerminator(_ int, _ int) error { return nil }
