// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/citation-engine/pkg/types"

// The APA, Chicago and Harvard renderers cover author, year and title only
// and do not branch on document type.
// TODO: per-type tails (container, volume, pages, URL) for APA, Chicago and
// Harvard to match the MLA renderers.

func apa(b *builder, r types.Record) {
	nameLastInitial(b, r.Author)
	b.field("(", r.Year, "). ")
	b.WriteString(clean(r.Title) + ". ")
}

func harvard(b *builder, r types.Record) {
	nameLastInitial(b, r.Author)
	b.field("(", r.Year, ") ")
	b.WriteString("'" + clean(r.Title) + "', ")
}

func chicago(b *builder, r types.Record) {
	nameLastFirst(b, r.Author)
	switch r.DocumentType() {
	case types.DocBook, types.DocThesis:
		b.WriteString(clean(r.Title) + ". ")
	default:
		b.WriteString(`"` + clean(r.Title) + `." `)
	}
	b.field("", r.Place, ": ")
	b.field("", r.Publisher, ", ")
	b.field("", r.Year, ". ")
}
