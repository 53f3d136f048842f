// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csl converts citation records to CSL (Citation Style Language)
// items so that a bibliography can be handed to Pandoc or a reference
// manager instead of being rendered by this engine.
package csl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/internal/format"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// Item represents a bibliographic entry in CSL format. The field names and
// structure follow the CSL-JSON/CSL-YAML schema.
type Item struct {
	ID               string `yaml:"id"`
	Type             string `yaml:"type"`
	Title            string `yaml:"title"`
	Author           []Name `yaml:"author,omitempty"`
	Translator       []Name `yaml:"translator,omitempty"`
	ContainerTitle   string `yaml:"container-title,omitempty"`
	CollectionTitle  string `yaml:"collection-title,omitempty"`
	CollectionNumber string `yaml:"collection-number,omitempty"`
	Publisher        string `yaml:"publisher,omitempty"`
	PublisherPlace   string `yaml:"publisher-place,omitempty"`
	EventPlace       string `yaml:"event-place,omitempty"`
	Genre            string `yaml:"genre,omitempty"`
	Edition          string `yaml:"edition,omitempty"`
	Volume           string `yaml:"volume,omitempty"`
	NumberOfVolumes  string `yaml:"number-of-volumes,omitempty"`
	Issue            string `yaml:"issue,omitempty"`
	Section          string `yaml:"section,omitempty"`
	Page             string `yaml:"page,omitempty"`
	Language         string `yaml:"language,omitempty"`
	Issued           *Date  `yaml:"issued,omitempty"`
	Accessed         *Date  `yaml:"accessed,omitempty"`
	DOI              string `yaml:"DOI,omitempty"`
	ISBN             string `yaml:"ISBN,omitempty"`
	ISSN             string `yaml:"ISSN,omitempty"`
	URL              string `yaml:"URL,omitempty"`
	Note             string `yaml:"note,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// Date represents a date in CSL format using date-parts, or a literal when
// the value is not a recognizable date.
type Date struct {
	DateParts [][]int `yaml:"date-parts,omitempty"`
	Literal   string  `yaml:"literal,omitempty"`
}

// cslTypes maps document types to CSL item types.
var cslTypes = map[types.DocumentType]string{
	types.DocBook:             "book",
	types.DocBookSection:      "chapter",
	types.DocJournalArticle:   "article-journal",
	types.DocNewspaperArticle: "article-newspaper",
	types.DocWebsite:          "webpage",
	types.DocThesis:           "thesis",
	types.DocConference:       "paper-conference",
}

// Write writes recs as a CSL-YAML list to w.
func Write(recs []types.Record, w io.Writer) error {
	items := make([]Item, len(recs))
	seen := make(map[string]int)
	for i, r := range recs {
		items[i] = FromRecord(r)
		items[i].ID = uniqueID(items[i].ID, seen)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding CSL items: %w", err)
	}
	return nil
}

// FromRecord converts a Record to an Item.
func FromRecord(r types.Record) Item {
	item := Item{
		ID:             citationKey(r),
		Type:           itemType(r.DocumentType()),
		Title:          strings.TrimSpace(r.Title),
		Publisher:      strings.TrimSpace(r.Publisher),
		PublisherPlace: strings.TrimSpace(r.Place),
		URL:            strings.TrimSpace(r.URL),
		Note:           strings.TrimSpace(r.Notes),
		Issued:         issued(r.Year),
	}
	if n, ok := toName(r.Author); ok {
		item.Author = []Name{n}
	}
	if r.Translator != nil {
		if n, ok := toName(*r.Translator); ok {
			item.Translator = []Name{n}
		}
	}
	if accessed := strings.TrimSpace(r.Accessed); accessed != "" {
		if t, ok := format.ParseDate(accessed); ok {
			item.Accessed = &Date{DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}}}
		} else {
			item.Accessed = &Date{Literal: accessed}
		}
	}

	switch d := r.Details.(type) {
	case types.Book:
		item.Edition = d.Edition
		item.CollectionTitle = d.Series
		item.CollectionNumber = d.SeriesNumber
		item.Volume = d.Volume
		item.NumberOfVolumes = d.TotalVolumes
		item.ISBN = d.ISBN
		item.Page = d.Pages
		item.Language = d.Language
	case types.BookSection:
		item.ContainerTitle = d.BookTitle
		item.Edition = d.Edition
		item.Page = d.Pages
		item.ISBN = d.ISBN
	case types.JournalArticle:
		item.ContainerTitle = d.JournalTitle
		item.Volume = d.Volume
		item.Issue = d.Issue
		item.Page = d.Pages
		item.DOI = d.DOI
	case types.NewspaperArticle:
		item.ContainerTitle = d.NewspaperTitle
		item.Section = d.Section
		item.Page = d.Pages
		item.Edition = d.Edition
		item.ISSN = d.ISSN
	case types.Website:
		item.ContainerTitle = d.WebsiteTitle
	case types.Thesis:
		item.Publisher = d.University
		item.Genre = d.ThesisType
	case types.Conference:
		item.ContainerTitle = d.ConferenceName
		item.EventPlace = d.ConferenceLocation
		item.Page = d.Pages
	}
	return item
}

func itemType(doc types.DocumentType) string {
	if t, ok := cslTypes[doc]; ok {
		return t
	}
	return "document"
}

// toName converts a Person to a CSL name. A person with only a first name
// becomes a literal name.
func toName(p types.Person) (Name, bool) {
	family, given := strings.TrimSpace(p.LastName), strings.TrimSpace(p.FirstName)
	switch {
	case family != "":
		return Name{Family: family, Given: given}, true
	case given != "":
		return Name{Literal: given}, true
	}
	return Name{}, false
}

// issued converts a year field to a CSL date. Non-numeric years such as
// "n.d." or "c. 1850" are kept as literals.
func issued(year string) *Date {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil
	}
	if y, err := strconv.Atoi(year); err == nil {
		return &Date{DateParts: [][]int{{y}}}
	}
	return &Date{Literal: year}
}

// citationKey builds a key from the author's family name and the year, e.g.
// "orwell1949". Letters are lower-cased and everything else is dropped.
func citationKey(r types.Record) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(r.Author.LastName) {
		if unicode.IsLetter(ch) {
			b.WriteRune(ch)
		}
	}
	for _, ch := range r.Year {
		if unicode.IsDigit(ch) {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return "item"
	}
	return b.String()
}

// uniqueID returns id, or id with the first letter suffix that no earlier
// item has taken, either as its own key or as a suffixed one.
func uniqueID(id string, seen map[string]int) string {
	candidate := id
	for n := seen[id]; seen[candidate] > 0; n++ {
		candidate = id + suffix(n-1)
	}
	if candidate != id {
		seen[id]++
	}
	seen[candidate]++
	return candidate
}

// suffix maps 0, 1, ... 25, 26, ... to "a", "b", ... "z", "aa", ...
func suffix(n int) string {
	s := ""
	for {
		s = string(rune('a'+n%26)) + s
		n = n/26 - 1
		if n < 0 {
			return s
		}
	}
}
