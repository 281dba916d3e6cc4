package classify

import (
	"math/bits"

	"github.com/corejp/corejp/input"
)

// EventKind discriminates the six structural events spec.md §4.3 names.
type EventKind uint8

const (
	EventOpenCurly EventKind = iota
	EventOpenSquare
	EventCloseCurly
	EventCloseSquare
	EventComma
	EventColon
)

func (k EventKind) String() string {
	switch k {
	case EventOpenCurly:
		return "{"
	case EventOpenSquare:
		return "["
	case EventCloseCurly:
		return "}"
	case EventCloseSquare:
		return "]"
	case EventComma:
		return ","
	case EventColon:
		return ":"
	default:
		return "?"
	}
}

// Event is one structural character observed outside any string literal,
// with its byte index already corrected for leading padding (spec.md §4.3).
type Event struct {
	Kind  EventKind
	Index int
}

// blockMasks holds the six per-character equality masks computed for one
// block, restricted to bytes outside any string. Kept separate (rather than
// eagerly unioned) because emit_colons/emit_commas gating (spec.md §4.3) can
// flip mid-stream and must never resurrect already-consumed bit positions.
type blockMasks struct {
	openCurly, openSquare   uint64
	closeCurly, closeSquare uint64
	comma, colon            uint64
}

// ResumeToken captures everything needed to continue classification exactly
// where a Pipeline left off, per spec.md §3.5 / §4.2's "Resumption". It is
// an opaque, copyable value.
type ResumeToken struct {
	blockIndex           int
	prevInString         bool
	prevEndsOddBackslash uint64
	emitColons           bool
	emitCommas           bool
}

// Pipeline drives the quote and structural classifiers over an Input's
// blocks, producing an ordered Event stream. One Pipeline is owned
// exclusively by a single executor run (spec.md §5's concurrency model).
type Pipeline struct {
	in         input.Input
	blockSize  int
	eq         func([]byte, byte) uint64
	Tier       Tier
	leadingPad int

	quote quoteState

	emitColons bool
	emitCommas bool

	blockIndex    int
	blockStart    int // absolute (padded-stream) offset of blockIndex's first byte
	masks         blockMasks
	inStringMask  uint64
	remaining     uint64 // bits not yet emitted from the current block
	haveBlock     bool
	exhausted     bool
}

// NewPipeline creates a Pipeline reading blocks of the given size from in.
// Colon and comma emission both start disabled, matching the executor's
// initial state (spec.md §4.5.1 sets both toggles via the first Opening).
func NewPipeline(in input.Input, blockSize int) *Pipeline {
	return NewPipelineWithSIMD(in, blockSize, true)
}

// NewPipelineWithSIMD creates a Pipeline as NewPipeline does, but lets the
// caller force the portable scalar classifier on even on hardware capable
// of SWAR-width block scanning. This is spec.md §6.4's advisory override
// surfaced as Config.EnableSIMD, alongside the COREJP_SIMD_OVERRIDE
// environment variable detectTier already honors.
func NewPipelineWithSIMD(in input.Input, blockSize int, enableSIMD bool) *Pipeline {
	tier, eq := TierNone, eqMaskScalar
	if enableSIMD {
		tier, eq = configureSIMD()
	}
	return &Pipeline{
		in:         in,
		blockSize:  blockSize,
		eq:         eq,
		Tier:       tier,
		leadingPad: in.LeadingPaddingLen(),
	}
}

// Resume rebuilds a Pipeline from a token produced by Stop, continuing
// classification from the next unconsumed block boundary.
func Resume(in input.Input, blockSize int, tok ResumeToken) *Pipeline {
	return ResumeWithSIMD(in, blockSize, tok, true)
}

// ResumeWithSIMD is Resume with the same SIMD-forcing control
// NewPipelineWithSIMD offers.
func ResumeWithSIMD(in input.Input, blockSize int, tok ResumeToken, enableSIMD bool) *Pipeline {
	p := NewPipelineWithSIMD(in, blockSize, enableSIMD)
	p.blockIndex = tok.blockIndex
	p.quote.prevInString = tok.prevInString
	p.quote.prevEndsOddBackslash = tok.prevEndsOddBackslash
	p.emitColons = tok.emitColons
	p.emitCommas = tok.emitCommas
	return p
}

// Stop suspends the pipeline at the next block boundary and returns a
// resume token. Any bits already buffered from the in-flight block are
// discarded; practically, callers stop between Next() calls (e.g. at a
// tail-skip), where the in-flight block is always fully drained first.
func (p *Pipeline) Stop() ResumeToken {
	return ResumeToken{
		blockIndex:           p.blockIndex,
		prevInString:         p.quote.prevInString,
		prevEndsOddBackslash: p.quote.prevEndsOddBackslash,
		emitColons:           p.emitColons,
		emitCommas:           p.emitCommas,
	}
}

// SetEmitColons toggles colon events, effective starting at fromIndex
// (absolute, already leading-padding-corrected), per spec.md §4.3's
// "Runtime gating of colons/commas".
func (p *Pipeline) SetEmitColons(enabled bool, fromIndex int) {
	p.emitColons = enabled
	p.applyToggle(enabled, fromIndex, p.masks.colon)
}

// SetEmitCommas toggles comma events, effective starting at fromIndex.
func (p *Pipeline) SetEmitCommas(enabled bool, fromIndex int) {
	p.emitCommas = enabled
	p.applyToggle(enabled, fromIndex, p.masks.comma)
}

func (p *Pipeline) applyToggle(enabled bool, fromIndex int, mask uint64) {
	if !p.haveBlock {
		return
	}
	rel := fromIndex - p.blockStart
	if rel < 0 {
		rel = 0
	}
	if rel >= p.blockSize {
		return // takes effect once the relevant future block is fetched
	}
	var belowMask uint64
	if rel > 0 {
		belowMask = (uint64(1) << uint(rel)) - 1
	}
	if enabled {
		p.remaining |= mask &^ belowMask
	} else {
		p.remaining &^= mask
	}
}

// Next returns the next structural event, or ok=false when the input is
// exhausted (spec.md §4.5.1 step 2).
func (p *Pipeline) Next() (Event, bool, error) {
	for {
		if p.remaining != 0 {
			bit := bits.TrailingZeros64(p.remaining)
			p.remaining &= p.remaining - 1
			absIdx := p.blockStart + bit
			kind := p.kindForBit(bit)
			return Event{Kind: kind, Index: absIdx - p.leadingPad}, true, nil
		}
		if p.exhausted {
			return Event{}, false, nil
		}
		if err := p.loadNextBlock(); err != nil {
			return Event{}, false, err
		}
	}
}

func (p *Pipeline) loadNextBlock() error {
	block, ok := p.in.Block(p.blockIndex, p.blockSize)
	if !ok {
		p.exhausted = true
		p.haveBlock = false
		return nil
	}
	p.blockStart = p.blockIndex * p.blockSize
	p.haveBlock = true

	inString := p.quote.classifyBlock(block, p.eq)
	notInString := ^inString

	p.masks = blockMasks{
		openCurly:   p.eq(block, '{') & notInString,
		openSquare:  p.eq(block, '[') & notInString,
		closeCurly:  p.eq(block, '}') & notInString,
		closeSquare: p.eq(block, ']') & notInString,
		comma:       p.eq(block, ',') & notInString,
		colon:       p.eq(block, ':') & notInString,
	}

	combined := p.masks.openCurly | p.masks.openSquare | p.masks.closeCurly | p.masks.closeSquare
	if p.emitColons {
		combined |= p.masks.colon
	}
	if p.emitCommas {
		combined |= p.masks.comma
	}
	p.remaining = combined
	p.blockIndex++
	return nil
}

func (p *Pipeline) kindForBit(bit int) EventKind {
	b := uint64(1) << uint(bit)
	switch {
	case p.masks.openCurly&b != 0:
		return EventOpenCurly
	case p.masks.openSquare&b != 0:
		return EventOpenSquare
	case p.masks.closeCurly&b != 0:
		return EventCloseCurly
	case p.masks.closeSquare&b != 0:
		return EventCloseSquare
	case p.masks.comma&b != 0:
		return EventComma
	default:
		return EventColon
	}
}
