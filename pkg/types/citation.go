// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the citation engine:
// people, citation styles, document types, and the bibliographic Record that
// the formatter renders.
package types

import "strings"

// Style names a citation convention governing field order and punctuation.
type Style string

const (
	StyleMLA     Style = "MLA"
	StyleAPA     Style = "APA"
	StyleChicago Style = "Chicago"
	StyleHarvard Style = "Harvard"
)

// Styles lists the supported citation styles in display order.
var Styles = []Style{StyleMLA, StyleAPA, StyleChicago, StyleHarvard}

// DocumentType identifies the category of source being cited.
type DocumentType string

const (
	DocBook             DocumentType = "book"
	DocBookSection      DocumentType = "bookSection"
	DocJournalArticle   DocumentType = "journalArticle"
	DocNewspaperArticle DocumentType = "newspaperArticle"
	DocWebsite          DocumentType = "website"
	DocThesis           DocumentType = "thesis"
	DocConference       DocumentType = "conference"
)

// DocumentTypes lists every document type a Record can carry.
var DocumentTypes = []DocumentType{
	DocBook,
	DocBookSection,
	DocJournalArticle,
	DocNewspaperArticle,
	DocWebsite,
	DocThesis,
	DocConference,
}

// Person is an author or translator.
type Person struct {
	// Title is an honorific such as "Dr." It is collected but not rendered.
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
}

// IsZero reports whether every field of p is empty, meaning "no person".
func (p Person) IsZero() bool {
	return p.Title == "" && p.FirstName == "" && p.LastName == ""
}

// Record is the structured input describing one bibliographic source. The
// shared fields live on Record itself; the fields that only make sense for
// one document type live in Details.
type Record struct {
	Style      Style
	Author     Person
	Translator *Person
	Title      string
	Year       string
	Publisher  string
	Place      string
	URL        string

	// Accessed is the raw access date as entered, e.g. "2024-03-05".
	Accessed string
	Notes    string

	// Details carries the type-specific fields. Its concrete type is the
	// record's document type; nil means the type is unknown.
	Details Details
}

// DocumentType returns the document type tag of r, or "" when r has no
// details.
func (r Record) DocumentType() DocumentType {
	if r.Details == nil {
		return ""
	}
	return r.Details.DocumentType()
}

// Details is the closed set of per-document-type payloads.
type Details interface {
	DocumentType() DocumentType
	details()
}

// Book holds the fields specific to a whole book.
type Book struct {
	Edition      string
	Series       string
	SeriesNumber string
	Volume       string
	TotalVolumes string
	ISBN         string
	Pages        string
	Language     string
}

// BookSection holds the fields of a chapter or section within a book.
type BookSection struct {
	BookTitle string
	Edition   string
	Pages     string
	ISBN      string
}

// JournalArticle holds the fields of an article in a periodical.
type JournalArticle struct {
	JournalTitle string
	Volume       string
	Issue        string
	Pages        string
	DOI          string
}

// NewspaperArticle holds the fields of a newspaper article.
type NewspaperArticle struct {
	NewspaperTitle string
	Section        string
	Pages          string
	Edition        string
	ISSN           string
}

// Website holds the fields of a web page.
type Website struct {
	WebsiteTitle string
}

// Thesis holds the fields of a dissertation or thesis.
type Thesis struct {
	University string
	ThesisType string
}

// Conference holds the fields of a conference paper.
type Conference struct {
	ConferenceName     string
	ConferenceLocation string
	Pages              string
}

func (Book) DocumentType() DocumentType             { return DocBook }
func (BookSection) DocumentType() DocumentType      { return DocBookSection }
func (JournalArticle) DocumentType() DocumentType   { return DocJournalArticle }
func (NewspaperArticle) DocumentType() DocumentType { return DocNewspaperArticle }
func (Website) DocumentType() DocumentType          { return DocWebsite }
func (Thesis) DocumentType() DocumentType           { return DocThesis }
func (Conference) DocumentType() DocumentType       { return DocConference }

func (Book) details()             {}
func (BookSection) details()      {}
func (JournalArticle) details()   {}
func (NewspaperArticle) details() {}
func (Website) details()          {}
func (Thesis) details()           {}
func (Conference) details()       {}

// ParseStyle matches s against the supported styles ignoring case and
// surrounding whitespace.
func ParseStyle(s string) (Style, bool) {
	s = strings.TrimSpace(s)
	for _, style := range Styles {
		if strings.EqualFold(s, string(style)) {
			return style, true
		}
	}
	return Style(s), false
}
