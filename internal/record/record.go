// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record loads bibliographic records from YAML, JSON and TOML files,
// normalizes their text, and checks the fields a citation cannot do without.
//
// Files use the flat field names of the citation form (documentType,
// journalTitle, thesisType, ...). Each record is projected onto the variant
// for its declared document type; fields that belong to other types are
// dropped.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// text is a record field value. Files often carry years, volumes and page
// numbers as bare numbers; text accepts any scalar and keeps its literal form.
type text string

// UnmarshalYAML keeps the literal value of any scalar node.
func (t *text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.ShortTag() == "!!null" {
		*t = ""
		return nil
	}
	*t = text(node.Value)
	return nil
}

// UnmarshalJSON accepts strings, numbers and null.
func (t *text) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = text(v)
	case json.Number:
		*t = text(v.String())
	default:
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	return nil
}

// UnmarshalText is used by the TOML decoder, which converts numbers to their
// decimal form before calling it.
func (t *text) UnmarshalText(b []byte) error {
	*t = text(b)
	return nil
}

// person is the on-disk form of types.Person.
type person struct {
	Title     text `yaml:"title" toml:"title" json:"title"`
	FirstName text `yaml:"firstName" toml:"firstName" json:"firstName"`
	LastName  text `yaml:"lastName" toml:"lastName" json:"lastName"`
}

// entry is the flat on-disk form of a record: the shared fields plus the
// union of every document type's fields.
type entry struct {
	Style        text    `yaml:"style" toml:"style" json:"style"`
	DocumentType text    `yaml:"documentType" toml:"documentType" json:"documentType"`
	Author       person  `yaml:"author" toml:"author" json:"author"`
	Translator   *person `yaml:"translator" toml:"translator" json:"translator"`
	Title        text    `yaml:"title" toml:"title" json:"title"`
	Year         text    `yaml:"year" toml:"year" json:"year"`
	Publisher    text    `yaml:"publisher" toml:"publisher" json:"publisher"`
	Place        text    `yaml:"place" toml:"place" json:"place"`
	URL          text    `yaml:"url" toml:"url" json:"url"`
	Accessed     text    `yaml:"accessed" toml:"accessed" json:"accessed"`
	Notes        text    `yaml:"notes" toml:"notes" json:"notes"`

	Edition            text `yaml:"edition" toml:"edition" json:"edition"`
	Series             text `yaml:"series" toml:"series" json:"series"`
	SeriesNumber       text `yaml:"seriesNumber" toml:"seriesNumber" json:"seriesNumber"`
	Volume             text `yaml:"volume" toml:"volume" json:"volume"`
	TotalVolumes       text `yaml:"totalVolumes" toml:"totalVolumes" json:"totalVolumes"`
	ISBN               text `yaml:"isbn" toml:"isbn" json:"isbn"`
	Pages              text `yaml:"pages" toml:"pages" json:"pages"`
	Language           text `yaml:"language" toml:"language" json:"language"`
	BookTitle          text `yaml:"bookTitle" toml:"bookTitle" json:"bookTitle"`
	JournalTitle       text `yaml:"journalTitle" toml:"journalTitle" json:"journalTitle"`
	Issue              text `yaml:"issue" toml:"issue" json:"issue"`
	DOI                text `yaml:"doi" toml:"doi" json:"doi"`
	NewspaperTitle     text `yaml:"newspaperTitle" toml:"newspaperTitle" json:"newspaperTitle"`
	Section            text `yaml:"section" toml:"section" json:"section"`
	ISSN               text `yaml:"issn" toml:"issn" json:"issn"`
	WebsiteTitle       text `yaml:"websiteTitle" toml:"websiteTitle" json:"websiteTitle"`
	University         text `yaml:"university" toml:"university" json:"university"`
	ThesisType         text `yaml:"thesisType" toml:"thesisType" json:"thesisType"`
	ConferenceName     text `yaml:"conferenceName" toml:"conferenceName" json:"conferenceName"`
	ConferenceLocation text `yaml:"conferenceLocation" toml:"conferenceLocation" json:"conferenceLocation"`
}

// isZero reports whether e carries none of the identifying fields, which is
// what decoding a list-shaped file as a single record produces.
func (e entry) isZero() bool {
	return e.Style == "" && e.DocumentType == "" && e.Title == "" &&
		e.Author == (person{}) && e.Translator == nil
}

// clean normalizes a field to NFC and trims surrounding whitespace.
func clean(t text) string {
	return strings.TrimSpace(norm.NFC.String(string(t)))
}

func (p person) toPerson() types.Person {
	return types.Person{
		Title:     clean(p.Title),
		FirstName: clean(p.FirstName),
		LastName:  clean(p.LastName),
	}
}

// toRecord projects e onto the variant for its document type.
func (e entry) toRecord() types.Record {
	rec := types.Record{
		Author:    e.Author.toPerson(),
		Title:     clean(e.Title),
		Year:      clean(e.Year),
		Publisher: clean(e.Publisher),
		Place:     clean(e.Place),
		URL:       clean(e.URL),
		Accessed:  clean(e.Accessed),
		Notes:     clean(e.Notes),
	}

	style := clean(e.Style)
	if s, ok := types.ParseStyle(style); ok {
		rec.Style = s
	} else {
		rec.Style = types.Style(style)
	}

	if e.Translator != nil {
		if tr := e.Translator.toPerson(); !tr.IsZero() {
			rec.Translator = &tr
		}
	}

	switch types.DocumentType(clean(e.DocumentType)) {
	case types.DocBook:
		rec.Details = types.Book{
			Edition:      clean(e.Edition),
			Series:       clean(e.Series),
			SeriesNumber: clean(e.SeriesNumber),
			Volume:       clean(e.Volume),
			TotalVolumes: clean(e.TotalVolumes),
			ISBN:         clean(e.ISBN),
			Pages:        clean(e.Pages),
			Language:     clean(e.Language),
		}
	case types.DocBookSection:
		rec.Details = types.BookSection{
			BookTitle: clean(e.BookTitle),
			Edition:   clean(e.Edition),
			Pages:     clean(e.Pages),
			ISBN:      clean(e.ISBN),
		}
	case types.DocJournalArticle:
		rec.Details = types.JournalArticle{
			JournalTitle: clean(e.JournalTitle),
			Volume:       clean(e.Volume),
			Issue:        clean(e.Issue),
			Pages:        clean(e.Pages),
			DOI:          clean(e.DOI),
		}
	case types.DocNewspaperArticle:
		rec.Details = types.NewspaperArticle{
			NewspaperTitle: clean(e.NewspaperTitle),
			Section:        clean(e.Section),
			Pages:          clean(e.Pages),
			Edition:        clean(e.Edition),
			ISSN:           clean(e.ISSN),
		}
	case types.DocWebsite:
		rec.Details = types.Website{WebsiteTitle: clean(e.WebsiteTitle)}
	case types.DocThesis:
		rec.Details = types.Thesis{
			University: clean(e.University),
			ThesisType: clean(e.ThesisType),
		}
	case types.DocConference:
		rec.Details = types.Conference{
			ConferenceName:     clean(e.ConferenceName),
			ConferenceLocation: clean(e.ConferenceLocation),
			Pages:              clean(e.Pages),
		}
	}
	return rec
}
