// Package corejp provides a streaming JSONPath query engine for Go.
//
// corejp compiles a query (an ordered list of NFA states — see
// automaton.Builder for a convenience way to build one) into a DFA once,
// then runs that DFA over a JSON document in a single linear pass: no
// recursive descent, no intermediate parse tree, and skip optimizations
// that let whole subtrees or whole stretches of raw bytes be bypassed once
// the automaton can prove they hold no further matches.
//
// Basic usage:
//
//	q, err := corejp.Compile(b.Build()) // b built via automaton.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	count, err := q.Count([]byte(`{"a":1,"b":2}`))
//
// Advanced usage:
//
//	config := corejp.DefaultConfig()
//	config.EnableHeadSkip = false
//	q, err := corejp.CompileWithConfig(nfa, config)
package corejp

import (
	"github.com/corejp/corejp/automaton"
	"github.com/corejp/corejp/engine"
	"github.com/corejp/corejp/input"
	"github.com/corejp/corejp/result"
)

// Query represents a compiled JSONPath query: an immutable, thread-safe DFA
// ready to run against any number of documents.
//
// A Query is safe for concurrent use by multiple goroutines — the DFA it
// wraps is read-only, and every run allocates its own Executor state.
type Query struct {
	aut    *automaton.Automaton
	config Config
}

// Compile compiles nfa into a Query using DefaultConfig.
func Compile(nfa automaton.NFA) (*Query, error) {
	return CompileWithConfig(nfa, DefaultConfig())
}

// MustCompile compiles nfa and panics if compilation fails.
func MustCompile(nfa automaton.NFA) *Query {
	q, err := Compile(nfa)
	if err != nil {
		panic("corejp: Compile: " + err.Error())
	}
	return q
}

// CompileWithConfig compiles nfa with a caller-supplied configuration.
func CompileWithConfig(nfa automaton.NFA, config Config) (*Query, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	aut, err := automaton.Compile(nfa, automaton.Config{MaxDFAStates: config.MaxDFAStates})
	if err != nil {
		return nil, err
	}
	return &Query{aut: aut, config: config}, nil
}

func (q *Query) newInput(doc []byte) input.Input {
	return input.NewBuffer(doc, q.config.BlockSize)
}

func (q *Query) newExecutor(in input.Input, rec result.Recorder, enableHeadSkip bool) *engine.Executor {
	ex := engine.New(q.aut, in, rec, q.config.BlockSize, q.config.MaxDepth, enableHeadSkip)
	if !q.config.EnableSIMD {
		ex.DisableSIMD()
	}
	return ex
}

func (q *Query) run(doc []byte, rec result.Recorder, headSkipEligible bool) error {
	in := q.newInput(doc)
	ex := q.newExecutor(in, rec, q.config.EnableHeadSkip && headSkipEligible)
	return ex.Run()
}

// Count returns the number of matches of the query in doc.
//
// Example:
//
//	n, err := q.Count([]byte(`{"a":[1,2,3]}`))
func (q *Query) Count(doc []byte) (uint64, error) {
	rec := result.NewCountRecorder()
	if err := q.run(doc, rec, true); err != nil {
		return 0, err
	}
	return rec.Count(), nil
}

// Indices returns the starting byte index of every match, in document
// order.
func (q *Query) Indices(doc []byte) ([]int, error) {
	sink := &result.SliceSink[int]{}
	rec := result.NewIndexRecorder(sink)
	if err := q.run(doc, rec, true); err != nil {
		return nil, err
	}
	return sink.Values, nil
}

// ApproxSpans returns the approximate byte span of every match: exact for
// complex (object/array) values, and running from the value's first
// non-whitespace byte to its terminating comma or closing bracket for
// atomic values (spec.md §4.6).
//
// Head-skip is never used here: its matches are recorded at a fixed depth
// that would be indistinguishable from genuinely co-located spans (see
// engine.runHeadSkip's doc comment), so this always runs the general
// executor regardless of Config.EnableHeadSkip.
func (q *Query) ApproxSpans(doc []byte) ([]result.Span, error) {
	sink := &result.SliceSink[result.Span]{}
	rec := result.NewApproxSpanRecorder(sink)
	if err := q.run(doc, rec, false); err != nil {
		return nil, err
	}
	return sink.Values, nil
}

// Matches returns the full materialized byte range of every match,
// including its raw content. The most expensive of the four modes.
//
// As with ApproxSpans, head-skip is never used — see its doc comment.
func (q *Query) Matches(doc []byte) ([]result.Node, error) {
	in := q.newInput(doc)
	src, ok := in.(result.ByteSource)
	if !ok {
		return nil, &UnsupportedInputError{Op: "Matches"}
	}
	sink := &result.SliceSink[result.Node]{}
	rec := result.NewNodesRecorder(sink, src)
	ex := q.newExecutor(in, rec, false)
	if err := ex.Run(); err != nil {
		return nil, err
	}
	return sink.Values, nil
}
