// Package audience selects content items per target audience.
package audience

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nikogura/cvgen/pkg/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is the audience used when no item carries a target audience.
const Fallback = "General"

// Applies reports whether item is shown to audience. Universal items apply to everyone.
func Applies(item content.TaggedText, audience string) (ok bool) {
	if item.Universal() {
		ok = true
		return ok
	}
	ok = slices.Contains(item.TargetAudiences, audience)
	return ok
}

// Filter returns the items shown to audience, in their original order.
func Filter(items []content.TaggedText, audience string) (filtered []content.TaggedText) {
	filtered = make([]content.TaggedText, 0, len(items))
	for _, item := range items {
		if Applies(item, audience) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Collect returns every distinct audience tag used by summary, skills and job
// bullets, sorted. Education and languages are untagged and never contribute.
func Collect(doc content.Document) (audiences []string) {
	seen := make(map[string]struct{})
	add := func(items []content.TaggedText) {
		for _, item := range items {
			for _, tag := range item.TargetAudiences {
				seen[tag] = struct{}{}
			}
		}
	}

	add(doc.Summary)
	add(doc.Skills)
	for _, job := range doc.Experience {
		add(job.Bullets)
	}

	audiences = make([]string, 0, len(seen))
	for tag := range seen {
		audiences = append(audiences, tag)
	}
	sort.Strings(audiences)
	return audiences
}

// Resolve returns Collect(doc), or just Fallback when the document has no tags.
func Resolve(doc content.Document) (audiences []string, fallback bool) {
	audiences = Collect(doc)
	if len(audiences) == 0 {
		audiences = []string{Fallback}
		fallback = true
	}
	return audiences, fallback
}

// Label formats an audience for use in a filename: "full stack" becomes "Full_stack".
func Label(audience string) (label string) {
	lower := cases.Lower(language.Und).String(audience)
	if lower == "" {
		return label
	}
	_, size := utf8.DecodeRuneInString(lower)
	label = cases.Upper(language.Und).String(lower[:size]) + lower[size:]
	label = strings.ReplaceAll(label, " ", "_")
	return label
}
