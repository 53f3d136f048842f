// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders bibliographic records as citation strings.
//
// Format is a pure function: it performs no I/O, holds no mutable state, and
// is safe for concurrent use. It never fails. Absent optional fields are
// omitted together with their separators, an unsupported style yields
// UnsupportedStyle, and an accessed date that cannot be parsed is emitted as
// entered. Required fields (author last name, title) are not validated here;
// callers validate before formatting.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// UnsupportedStyle is returned by Format for a style it does not know.
const UnsupportedStyle = "Citation style not supported."

// renderer appends one complete citation for r to b.
type renderer func(b *builder, r types.Record)

// cell addresses one entry of the style by document type matrix.
type cell struct {
	style types.Style
	doc   types.DocumentType
}

// cells holds the renderer for each (style, document type) pair. MLA has a
// dedicated renderer per type; APA, Chicago and Harvard only implement a
// reduced author-year-title template, registered for every type in init.
var cells = map[cell]renderer{
	{types.StyleMLA, types.DocBook}:             mla(mlaBook),
	{types.StyleMLA, types.DocBookSection}:      mla(mlaBookSection),
	{types.StyleMLA, types.DocJournalArticle}:   mla(mlaJournal),
	{types.StyleMLA, types.DocNewspaperArticle}: mla(mlaNewspaper),
	{types.StyleMLA, types.DocWebsite}:          mla(mlaWebsite),
	{types.StyleMLA, types.DocThesis}:           mla(mlaThesis),
	{types.StyleMLA, types.DocConference}:       mla(mlaConference),
}

// styleDefaults renders records whose document type has no cell.
var styleDefaults = map[types.Style]renderer{
	types.StyleMLA:     mlaAuthorOnly,
	types.StyleAPA:     apa,
	types.StyleChicago: chicago,
	types.StyleHarvard: harvard,
}

func init() {
	for _, doc := range types.DocumentTypes {
		for _, style := range []types.Style{types.StyleAPA, types.StyleChicago, types.StyleHarvard} {
			cells[cell{style, doc}] = styleDefaults[style]
		}
	}
}

// Format returns the citation for rec in rec.Style.
func Format(rec types.Record) string {
	render, ok := lookup(rec.Style, rec.DocumentType())
	if !ok {
		return UnsupportedStyle
	}
	var b builder
	render(&b, rec)
	return b.String()
}

// Supported reports whether style is one Format can render.
func Supported(style types.Style) bool {
	_, ok := styleDefaults[style]
	return ok
}

func lookup(style types.Style, doc types.DocumentType) (renderer, bool) {
	if r, ok := cells[cell{style, doc}]; ok {
		return r, true
	}
	r, ok := styleDefaults[style]
	return r, ok
}

// builder accumulates a citation. Every optional field goes through field,
// which writes nothing at all when the value is blank.
type builder struct {
	strings.Builder
}

// field writes prefix, the trimmed value, and suffix, or nothing when the
// value is blank.
func (b *builder) field(prefix, value, suffix string) {
	value = clean(value)
	if value == "" {
		return
	}
	b.WriteString(prefix)
	b.WriteString(value)
	b.WriteString(suffix)
}

// clean trims surrounding whitespace; a whitespace-only value is absent.
func clean(s string) string {
	return strings.TrimSpace(s)
}

// detailsOf returns the type-specific fields of r as T, or the zero T when
// r carries a different variant.
func detailsOf[T types.Details](r types.Record) T {
	d, _ := r.Details.(T)
	return d
}

// initial returns the first letter of name followed by a period, or "" for
// an empty name.
func initial(name string) string {
	name = clean(name)
	if name == "" {
		return ""
	}
	ch, _ := utf8.DecodeRuneInString(name)
	return string(ch) + "."
}

// fullName joins the non-empty first and last names with a single space.
func fullName(p types.Person) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.FirstName, p.LastName} {
		if s = clean(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// nameLastFirst writes "Last, First. " or "Last. ", nothing without a last
// name. MLA and Chicago share it.
func nameLastFirst(b *builder, p types.Person) {
	last := clean(p.LastName)
	if last == "" {
		return
	}
	b.WriteString(last)
	b.field(", ", p.FirstName, "")
	b.WriteString(". ")
}

// nameLastInitial writes "Last, F. " or "Last ", nothing without a last
// name. APA and Harvard share it.
func nameLastInitial(b *builder, p types.Person) {
	last := clean(p.LastName)
	if last == "" {
		return
	}
	b.WriteString(last)
	b.field(", ", initial(p.FirstName), "")
	b.WriteString(" ")
}
