package domain

import (
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/zerr"
)

type rangeOp uint8

const (
	opAny rangeOp = iota // zero value: every version matches
	opNone
	opEq
	opGt
	opGe
	opLt
	opLe
	opUnion
	opIntersect
)

// VersionRange is a predicate over versions, parsed from the range grammar
// used by preferred-versions entries: comparisons (==, >, >=, <, <=), the
// wildcard form ==x.y.*, the constants -any and -none, and combinations via
// && and || with parentheses. The zero value matches any version.
type VersionRange struct {
	op    rangeOp
	ver   Version
	left  *VersionRange
	right *VersionRange
}

// AnyVersion matches every version. It is the default preferred range for a
// package until a preferred-versions entry arrives.
func AnyVersion() VersionRange { return VersionRange{} }

// NoVersion matches nothing.
func NoVersion() VersionRange { return VersionRange{op: opNone} }

// ParseVersionRange parses a range expression. The wildcard ==x.y.* is
// desugared to >=x.y && <x.(y+1), so String may return a canonical form
// that differs textually from the input.
func ParseVersionRange(s string) (VersionRange, error) {
	p := &rangeParser{input: s}
	p.tokenize()
	if p.err != nil {
		return VersionRange{}, zerr.With(zerr.Wrap(p.err, ErrInvalidVersionRange.Error()), "input", s)
	}
	r, err := p.parseUnion()
	if err != nil {
		return VersionRange{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionRange.Error()), "input", s)
	}
	if p.pos != len(p.tokens) {
		return VersionRange{}, zerr.With(zerr.With(ErrInvalidVersionRange, "input", s), "trailing", p.tokens[p.pos])
	}
	return r, nil
}

// Contains reports whether v satisfies the range.
func (r VersionRange) Contains(v Version) bool {
	switch r.op {
	case opAny:
		return true
	case opNone:
		return false
	case opEq:
		return CompareVersions(v, r.ver) == 0
	case opGt:
		return CompareVersions(v, r.ver) > 0
	case opGe:
		return CompareVersions(v, r.ver) >= 0
	case opLt:
		return CompareVersions(v, r.ver) < 0
	case opLe:
		return CompareVersions(v, r.ver) <= 0
	case opUnion:
		return r.left.Contains(v) || r.right.Contains(v)
	case opIntersect:
		return r.left.Contains(v) && r.right.Contains(v)
	}
	return false
}

// String renders the canonical textual form of the range.
func (r VersionRange) String() string {
	switch r.op {
	case opAny:
		return "-any"
	case opNone:
		return "-none"
	case opEq:
		return "==" + r.ver.String()
	case opGt:
		return ">" + r.ver.String()
	case opGe:
		return ">=" + r.ver.String()
	case opLt:
		return "<" + r.ver.String()
	case opLe:
		return "<=" + r.ver.String()
	case opUnion:
		return r.left.String() + " || " + r.right.String()
	case opIntersect:
		return r.operandString(r.left) + " && " + r.operandString(r.right)
	}
	return "-none"
}

// operandString parenthesizes unions nested inside an intersection so the
// rendered form reparses with the same precedence.
func (r VersionRange) operandString(operand *VersionRange) string {
	if operand.op == opUnion {
		return "(" + operand.String() + ")"
	}
	return operand.String()
}

// MarshalCBOR persists the range as its canonical string form.
func (r VersionRange) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.String())
}

// UnmarshalCBOR restores a range from its persisted string form.
func (r *VersionRange) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return zerr.Wrap(err, ErrInvalidVersionRange.Error())
	}
	parsed, err := ParseVersionRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// --- parsing ---

type rangeParser struct {
	input  string
	tokens []string
	pos    int
	err    error
}

var rangeSymbols = []string{"||", "&&", "(", ")", "==", ">=", "<=", ">", "<", "-any", "-none"}

func (p *rangeParser) tokenize() {
	rest := strings.TrimSpace(p.input)
	for rest != "" {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}
		matched := false
		for _, sym := range rangeSymbols {
			if strings.HasPrefix(rest, sym) {
				p.tokens = append(p.tokens, sym)
				rest = rest[len(sym):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		// Version literal, possibly with a trailing ".*" wildcard.
		end := 0
		for end < len(rest) && (rest[end] == '.' || rest[end] == '*' || (rest[end] >= '0' && rest[end] <= '9')) {
			end++
		}
		if end == 0 {
			p.err = zerr.With(zerr.New("unexpected character"), "at", rest)
			return
		}
		p.tokens = append(p.tokens, rest[:end])
		rest = rest[end:]
	}
}

func (p *rangeParser) parseUnion() (VersionRange, error) {
	left, err := p.parseIntersect()
	if err != nil {
		return VersionRange{}, err
	}
	for p.peek() == "||" {
		p.pos++
		right, err := p.parseIntersect()
		if err != nil {
			return VersionRange{}, err
		}
		l := left
		left = VersionRange{op: opUnion, left: &l, right: &right}
	}
	return left, nil
}

func (p *rangeParser) parseIntersect() (VersionRange, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return VersionRange{}, err
	}
	for p.peek() == "&&" {
		p.pos++
		right, err := p.parsePrimary()
		if err != nil {
			return VersionRange{}, err
		}
		l := left
		left = VersionRange{op: opIntersect, left: &l, right: &right}
	}
	return left, nil
}

func (p *rangeParser) parsePrimary() (VersionRange, error) {
	switch tok := p.peek(); tok {
	case "":
		return VersionRange{}, zerr.New("unexpected end of range expression")
	case "(":
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return VersionRange{}, err
		}
		if p.peek() != ")" {
			return VersionRange{}, zerr.New("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	case "-any":
		p.pos++
		return AnyVersion(), nil
	case "-none":
		p.pos++
		return NoVersion(), nil
	case "==", ">", ">=", "<", "<=":
		p.pos++
		lit := p.peek()
		if lit == "" {
			return VersionRange{}, zerr.With(zerr.New("comparison missing version"), "operator", tok)
		}
		p.pos++
		return p.comparison(tok, lit)
	default:
		return VersionRange{}, zerr.With(zerr.New("unexpected token"), "token", tok)
	}
}

func (p *rangeParser) comparison(op, lit string) (VersionRange, error) {
	if strings.HasSuffix(lit, ".*") {
		if op != "==" {
			return VersionRange{}, zerr.With(zerr.New("wildcard requires =="), "operator", op)
		}
		return wildcardRange(strings.TrimSuffix(lit, ".*"))
	}
	ver, err := ParseVersion(lit)
	if err != nil {
		return VersionRange{}, err
	}
	switch op {
	case "==":
		return VersionRange{op: opEq, ver: ver}, nil
	case ">":
		return VersionRange{op: opGt, ver: ver}, nil
	case ">=":
		return VersionRange{op: opGe, ver: ver}, nil
	case "<":
		return VersionRange{op: opLt, ver: ver}, nil
	case "<=":
		return VersionRange{op: opLe, ver: ver}, nil
	}
	return VersionRange{}, zerr.With(zerr.New("unknown operator"), "operator", op)
}

// wildcardRange desugars ==x.y.* into >=x.y && <x.(y+1).
func wildcardRange(prefix string) (VersionRange, error) {
	lower, err := ParseVersion(prefix)
	if err != nil {
		return VersionRange{}, err
	}
	segs, err := versionSegments(prefix)
	if err != nil {
		return VersionRange{}, err
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = strconv.Itoa(s)
	}
	parts[len(parts)-1] = strconv.Itoa(segs[len(segs)-1] + 1)
	upper := Version(strings.Join(parts, "."))
	lo := VersionRange{op: opGe, ver: lower}
	hi := VersionRange{op: opLt, ver: upper}
	return VersionRange{op: opIntersect, left: &lo, right: &hi}, nil
}

func (p *rangeParser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}
