package result

// ByteSource gives NodesRecorder read access to the raw document bytes it
// needs to materialize a matched node's text. input.Buffer satisfies this
// trivially by slicing its in-memory data; a future streaming Input would
// need its own mirrored-block buffer to do the same (see
// original_source/.../result/nodes.rs's InputRecorder-backed approach) —
// out of scope here since this module's one Input implementation is fully
// in-memory (spec.md §1's "block input abstractions... are external
// collaborators").
type ByteSource interface {
	Bytes(start, end int) []byte
}

// Node is a materialized match: its byte range plus the trimmed raw bytes
// of the node itself.
type Node struct {
	Start, End int
	Raw        []byte
}

// NodesRecorder delivers the full byte range of each matched node, trimmed
// to exactly the node's extent, the most expensive of the four modes
// (spec.md §4.6).
type NodesRecorder struct {
	sink Sink[Node]
	src  ByteSource
	open map[int]int // depth -> start index, pending a terminator
}

func NewNodesRecorder(sink Sink[Node], src ByteSource) *NodesRecorder {
	return &NodesRecorder{sink: sink, src: src, open: make(map[int]int)}
}

func (r *NodesRecorder) RecordMatch(index int, depth int, _ MatchedNodeType) error {
	r.open[depth] = index
	return nil
}

func (r *NodesRecorder) RecordValueTerminator(index int, depth int) error {
	start, ok := r.open[depth]
	if !ok {
		return nil
	}
	delete(r.open, depth)
	end := index
	raw := r.src.Bytes(start, end)
	for len(raw) > 0 {
		c := raw[len(raw)-1]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
		raw = raw[:len(raw)-1]
		end--
	}
	return r.sink.Emit(Node{Start: start, End: end, Raw: raw})
}
