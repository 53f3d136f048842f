// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/citation-engine/pkg/types"

// mla wraps a per-type tail with the MLA author and title clauses.
func mla(tail func(*builder, types.Record)) renderer {
	return func(b *builder, r types.Record) {
		nameLastFirst(b, r.Author)
		b.WriteString(`"` + clean(r.Title) + `." `)
		tail(b, r)
	}
}

// mlaAuthorOnly is used when the document type is unknown.
func mlaAuthorOnly(b *builder, r types.Record) {
	nameLastFirst(b, r.Author)
}

// publisherYear writes "Publisher, Year. ", "Publisher. " or "Year. ".
func publisherYear(b *builder, publisher, year string) {
	publisher, year = clean(publisher), clean(year)
	switch {
	case publisher != "":
		b.WriteString(publisher)
		b.field(", ", year, "")
		b.WriteString(". ")
	case year != "":
		b.WriteString(year + ". ")
	}
}

func mlaBook(b *builder, r types.Record) {
	d := detailsOf[types.Book](r)
	if r.Translator != nil && clean(r.Translator.LastName) != "" {
		b.WriteString("Translated by " + fullName(*r.Translator) + ", ")
	}
	b.field("", d.Edition, " ed., ")
	publisherYear(b, r.Publisher, r.Year)
}

func mlaBookSection(b *builder, r types.Record) {
	d := detailsOf[types.BookSection](r)
	b.field("", d.BookTitle, ", ")
	publisherYear(b, r.Publisher, r.Year)
	b.field("pp. ", d.Pages, ". ")
}

func mlaJournal(b *builder, r types.Record) {
	d := detailsOf[types.JournalArticle](r)
	b.field("", d.JournalTitle, ", ")
	volume, issue := clean(d.Volume), clean(d.Issue)
	switch {
	case volume != "":
		b.WriteString("vol. " + volume)
		b.field(", no. ", issue, "")
		b.WriteString(", ")
	case issue != "":
		b.WriteString("no. " + issue + ", ")
	}
	b.field("", r.Year, ", ")
	b.field("pp. ", d.Pages, ". ")
	b.field("DOI: ", d.DOI, "")
}

func mlaNewspaper(b *builder, r types.Record) {
	d := detailsOf[types.NewspaperArticle](r)
	b.field("", d.NewspaperTitle, ", ")
	b.field("", r.Year, ", ")
	b.field("", d.Section, ", ")
	b.field("p. ", d.Pages, ". ")
}

func mlaWebsite(b *builder, r types.Record) {
	d := detailsOf[types.Website](r)
	b.field("", d.WebsiteTitle, ", ")
	b.field("", r.Publisher, ", ")
	b.field("", r.Year, ", ")
	b.field("", r.URL, ". ")
	if accessed := clean(r.Accessed); accessed != "" {
		b.WriteString("Accessed " + LongDate(accessed) + ". ")
	}
}

func mlaThesis(b *builder, r types.Record) {
	d := detailsOf[types.Thesis](r)
	b.field("", d.ThesisType, ", ")
	b.field("", d.University, ", ")
	b.field("", r.Year, ". ")
}

func mlaConference(b *builder, r types.Record) {
	d := detailsOf[types.Conference](r)
	b.field("", d.ConferenceName, ", ")
	b.field("", d.ConferenceLocation, ", ")
	b.field("", r.Year, ". ")
}
