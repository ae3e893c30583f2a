// Package emphasis bolds known technical terms inside résumé prose.
//
// Matching is case-insensitive, longest term first, and whole-word: a term
// only matches when the characters on either side of it are not letters or
// digits. Markup already present in the text is opaque. Tags, character
// entities and the content of <b>, <strong> and <a> elements are never
// matched, so running Emphasize twice yields the same text as running it once.
package emphasis

import (
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

const (
	openMarker  = "<b>"
	closeMarker = "</b>"
)

// Emphasizer matches a fixed vocabulary. It is immutable and safe for concurrent use.
type Emphasizer struct {
	terms []string // longest first
	lower []string // ASCII-lowercased terms, same order and byte lengths
}

// New builds an Emphasizer for terms. Blank entries and case-insensitive
// duplicates are dropped (the first spelling wins). The terms are sorted once by
// descending length so that longer phrases claim their text before their prefixes.
func New(terms []string) (e *Emphasizer) {
	seen := make(map[string]struct{}, len(terms))
	kept := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := asciiLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, term)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i]) > len(kept[j])
	})

	e = &Emphasizer{
		terms: kept,
		lower: make([]string, len(kept)),
	}
	for i, term := range kept {
		e.lower[i] = asciiLower(term)
	}
	return e
}

//nolint:gochecknoglobals // built once from the static vocabulary
var defaultEmphasizer = sync.OnceValue(func() *Emphasizer {
	return New(Vocabulary)
})

// Default returns the shared Emphasizer for Vocabulary.
func Default() (e *Emphasizer) {
	e = defaultEmphasizer()
	return e
}

// Emphasize marks Vocabulary terms in text using the default Emphasizer.
func Emphasize(text string) (out string) {
	out = Default().Emphasize(text)
	return out
}

// Terms returns the vocabulary in matching order.
func (e *Emphasizer) Terms() (terms []string) {
	terms = make([]string, len(e.terms))
	copy(terms, e.terms)
	return terms
}

// Emphasize wraps every standalone occurrence of a vocabulary term in <b></b>,
// preserving the original casing.
func (e *Emphasizer) Emphasize(text string) (out string) {
	if text == "" || len(e.terms) == 0 {
		out = text
		return out
	}

	m := scanMarkup(text)
	haystack := asciiLower(text)
	var marks []span

	for _, term := range e.lower {
		from := 0
		for from+len(term) <= len(haystack) {
			idx := strings.Index(haystack[from:], term)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(term)

			if m.free(start, end) && m.wordBoundary(start, end) {
				m.block(start, end)
				marks = append(marks, span{start: start, end: end})
				from = end
				continue
			}
			from = start + 1
		}
	}

	if len(marks) == 0 {
		out = text
		return out
	}

	sort.Slice(marks, func(i, j int) bool {
		return marks[i].start < marks[j].start
	})

	var sb strings.Builder
	sb.Grow(len(text) + len(marks)*(len(openMarker)+len(closeMarker)))
	prev := 0
	for _, mk := range marks {
		sb.WriteString(text[prev:mk.start])
		sb.WriteString(openMarker)
		sb.WriteString(text[mk.start:mk.end])
		sb.WriteString(closeMarker)
		prev = mk.end
	}
	sb.WriteString(text[prev:])

	out = sb.String()
	return out
}

type span struct {
	start int
	end   int
}

// markup records which bytes of a text may not take part in a match and where tags sit.
type markup struct {
	text      string
	blocked   []bool
	tagByEnd  map[int]int // inline tag end (exclusive) -> tag start
	tagByHead map[int]int // inline tag start -> tag end (exclusive)
}

// protectedElements are elements whose content is already emphasized or is link text.
//
//nolint:gochecknoglobals // lookup table
var protectedElements = map[string]struct{}{
	"b":      {},
	"strong": {},
	"a":      {},
}

// inlineElements are looked through when checking word boundaries; any other
// tag, such as <br/>, separates words.
//
//nolint:gochecknoglobals // lookup table
var inlineElements = map[string]struct{}{
	"b":      {},
	"strong": {},
	"em":     {},
	"i":      {},
	"u":      {},
	"span":   {},
}

func scanMarkup(text string) (m *markup) {
	m = &markup{
		text:      text,
		blocked:   make([]bool, len(text)),
		tagByEnd:  make(map[int]int),
		tagByHead: make(map[int]int),
	}

	depth := 0
	i := 0
	for i < len(text) {
		switch {
		case text[i] == '<' && looksLikeTag(text, i):
			closeIdx := strings.IndexByte(text[i:], '>')
			// a '<' before the '>' means this one was a literal, not a tag
			if closeIdx < 0 || strings.IndexByte(text[i+1:i+closeIdx], '<') >= 0 {
				break
			}
			end := i + closeIdx + 1
			m.block(i, end)

			name, closing, selfClosing := parseTag(text[i:end])
			if _, ok := inlineElements[name]; ok {
				m.tagByHead[i] = end
				m.tagByEnd[end] = i
			}
			if _, ok := protectedElements[name]; ok {
				switch {
				case closing:
					if depth > 0 {
						depth--
					}
				case !selfClosing:
					depth++
				}
			}
			i = end
			continue

		case text[i] == '&':
			if end := entityEnd(text, i); end > 0 {
				m.block(i, end)
				i = end
				continue
			}
		}

		if depth > 0 {
			m.blocked[i] = true
		}
		i++
	}

	return m
}

func (m *markup) block(start, end int) {
	for i := start; i < end; i++ {
		m.blocked[i] = true
	}
}

// free reports whether no byte in [start, end) is opaque or already emphasized.
func (m *markup) free(start, end int) (ok bool) {
	for i := start; i < end; i++ {
		if m.blocked[i] {
			return ok
		}
	}
	ok = true
	return ok
}

// wordBoundary checks the characters around [start, end), looking through inline
// tags so the decision is the same before and after markers are inserted.
func (m *markup) wordBoundary(start, end int) (ok bool) {
	if r, found := m.runeBefore(start); found && isWordRune(r) {
		return ok
	}
	if r, found := m.runeAfter(end); found && isWordRune(r) {
		return ok
	}
	ok = true
	return ok
}

func (m *markup) runeBefore(pos int) (r rune, found bool) {
	for pos > 0 {
		if tagStart, isTag := m.tagByEnd[pos]; isTag {
			pos = tagStart
			continue
		}
		r, _ = utf8.DecodeLastRuneInString(m.text[:pos])
		found = true
		return r, found
	}
	return r, found
}

func (m *markup) runeAfter(pos int) (r rune, found bool) {
	for pos < len(m.text) {
		if tagEnd, isTag := m.tagByHead[pos]; isTag {
			pos = tagEnd
			continue
		}
		r, _ = utf8.DecodeRuneInString(m.text[pos:])
		found = true
		return r, found
	}
	return r, found
}

func isWordRune(r rune) (ok bool) {
	ok = unicode.IsLetter(r) || unicode.IsDigit(r)
	return ok
}

// looksLikeTag rejects a bare '<' such as in "latency < 5ms".
func looksLikeTag(text string, i int) (ok bool) {
	if i+1 >= len(text) {
		return ok
	}
	c := text[i+1]
	ok = c == '/' || c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	return ok
}

// parseTag extracts the lowercased element name of a tag like "<a href='x'>" or "</B>".
func parseTag(tag string) (name string, closing, selfClosing bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = inner[1:]
	}
	if strings.HasSuffix(inner, "/") {
		selfClosing = true
	}

	end := 0
	for end < len(inner) {
		c := inner[end]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			break
		}
		end++
	}
	name = asciiLower(inner[:end])
	return name, closing, selfClosing
}

// entityEnd returns the end of a character reference such as "&amp;" or "&#8211;" starting at i, or 0.
func entityEnd(text string, i int) (end int) {
	const maxEntity = 32
	limit := min(len(text), i+maxEntity)
	for j := i + 1; j < limit; j++ {
		c := text[j]
		if c == ';' {
			if j > i+1 {
				end = j + 1
			}
			return end
		}
		if !(c == '#' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return end
		}
	}
	return end
}

// asciiLower lowercases A-Z only, so byte offsets in the result match the input.
func asciiLower(s string) (lower string) {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	lower = string(b)
	return lower
}
