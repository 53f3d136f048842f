// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citation-engine/pkg/types"
)

var orwell1984 = types.Record{
	Style:     types.StyleMLA,
	Author:    types.Person{FirstName: "George", LastName: "Orwell"},
	Title:     "1984",
	Year:      "1949",
	Publisher: "Secker & Warburg",
	Details:   types.Book{Edition: "2nd"},
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   []types.Record
	}{
		{
			name:   "yaml single record drops foreign fields",
			format: FormatYAML,
			data: `
style: MLA
documentType: book
author:
  firstName: George
  lastName: Orwell
title: "1984"
year: 1949
publisher: Secker & Warburg
edition: 2nd
journalTitle: Ignored Quarterly
doi: 10.1/ignored
`,
			want: []types.Record{orwell1984},
		},
		{
			name:   "yaml records list",
			format: FormatYAML,
			data: `
records:
  - style: apa
    documentType: journalArticle
    author: {firstName: Ashish, lastName: Vaswani}
    title: Attention Is All You Need
    year: 2017
    journalTitle: NeurIPS
    volume: 30
    issue: 1
    pages: 5998-6008
    edition: ignored
  - style: Turabian
    documentType: pamphlet
    author: {lastName: Paine}
    title: Common Sense
`,
			want: []types.Record{
				{
					Style:  types.StyleAPA,
					Author: types.Person{FirstName: "Ashish", LastName: "Vaswani"},
					Title:  "Attention Is All You Need",
					Year:   "2017",
					Details: types.JournalArticle{
						JournalTitle: "NeurIPS",
						Volume:       "30",
						Issue:        "1",
						Pages:        "5998-6008",
					},
				},
				{
					Style:  types.Style("Turabian"),
					Author: types.Person{LastName: "Paine"},
					Title:  "Common Sense",
				},
			},
		},
		{
			name:   "yaml bare list with empty translator",
			format: FormatYAML,
			data: `
- style: Chicago
  documentType: thesis
  author: {firstName: Claude, lastName: Shannon}
  translator: {firstName: "", lastName: "  "}
  title: A Symbolic Analysis of Relay and Switching Circuits
  university: MIT
  thesisType: Master's thesis
  notes: ~
`,
			want: []types.Record{
				{
					Style:   types.StyleChicago,
					Author:  types.Person{FirstName: "Claude", LastName: "Shannon"},
					Title:   "A Symbolic Analysis of Relay and Switching Circuits",
					Details: types.Thesis{University: "MIT", ThesisType: "Master's thesis"},
				},
			},
		},
		{
			name:   "json single record with numbers and null",
			format: FormatJSON,
			data: `{
	"style": "Harvard",
	"documentType": "website",
	"author": {"firstName": "Jane", "lastName": "Doe"},
	"title": "Go Memory Model",
	"year": 2022,
	"url": "https://go.dev/ref/mem",
	"accessed": "2024-03-05",
	"websiteTitle": "The Go Programming Language",
	"notes": null
}`,
			want: []types.Record{
				{
					Style:    types.StyleHarvard,
					Author:   types.Person{FirstName: "Jane", LastName: "Doe"},
					Title:    "Go Memory Model",
					Year:     "2022",
					URL:      "https://go.dev/ref/mem",
					Accessed: "2024-03-05",
					Details:  types.Website{WebsiteTitle: "The Go Programming Language"},
				},
			},
		},
		{
			name:   "json records list",
			format: FormatJSON,
			data: `{"records": [
	{"style": "MLA", "documentType": "conference", "author": {"lastName": "Lamport", "firstName": "Leslie"},
	 "title": "Paxos Made Simple", "year": "2001", "conferenceName": "PODC", "conferenceLocation": "Newport",
	 "translator": {"firstName": "Ada", "lastName": "Byron", "title": "Countess"}}
]}`,
			want: []types.Record{
				{
					Style:      types.StyleMLA,
					Author:     types.Person{FirstName: "Leslie", LastName: "Lamport"},
					Translator: &types.Person{Title: "Countess", FirstName: "Ada", LastName: "Byron"},
					Title:      "Paxos Made Simple",
					Year:       "2001",
					Details:    types.Conference{ConferenceName: "PODC", ConferenceLocation: "Newport"},
				},
			},
		},
		{
			name:   "toml records array",
			format: FormatTOML,
			data: `
[[records]]
style = "MLA"
documentType = "newspaperArticle"
title = "Markets Rally"
year = 2024
newspaperTitle = "The Times"
section = "Business"
pages = "B2"
university = "ignored"

[records.author]
firstName = "John"
lastName = "Smith"
`,
			want: []types.Record{
				{
					Style:   types.StyleMLA,
					Author:  types.Person{FirstName: "John", LastName: "Smith"},
					Title:   "Markets Rally",
					Year:    "2024",
					Details: types.NewspaperArticle{NewspaperTitle: "The Times", Section: "Business", Pages: "B2"},
				},
			},
		},
		{
			name:   "toml single record",
			format: FormatTOML,
			data: `
style = "MLA"
documentType = "bookSection"
title = "The Ones Who Walk Away from Omelas"
bookTitle = "The Wind's Twelve Quarters"
pages = "275-284"

[author]
firstName = "Ursula"
lastName = "Le Guin"
`,
			want: []types.Record{
				{
					Style:   types.StyleMLA,
					Author:  types.Person{FirstName: "Ursula", LastName: "Le Guin"},
					Title:   "The Ones Who Walk Away from Omelas",
					Details: types.BookSection{BookTitle: "The Wind's Twelve Quarters", Pages: "275-284"},
				},
			},
		},
		{
			name:   "text is NFC normalized and trimmed",
			format: FormatYAML,
			data:   "style: MLA\ndocumentType: book\nauthor: {firstName: \" Gabriel \", lastName: \"Garci\u0301a Ma\u0301rquez\"}\ntitle: \"  Cien an\u0303os de soledad \"\n",
			want: []types.Record{
				{
					Style:   types.StyleMLA,
					Author:  types.Person{FirstName: "Gabriel", LastName: "Garc\u00eda M\u00e1rquez"},
					Title:   "Cien a\u00f1os de soledad",
					Details: types.Book{},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantErr error
	}{
		{"empty yaml", FormatYAML, "", ErrNoRecords},
		{"empty json", FormatJSON, "  ", ErrNoRecords},
		{"empty records list", FormatYAML, "records: []\n", ErrNoRecords},
		{"unknown format", Format("xml"), "<record/>", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Decode([]byte("title: [unclosed"), FormatYAML)
	assert.ErrorContains(t, err, "parsing records")

	_, err = Decode([]byte(`{"title": {"nested": true}}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orwell.yml")
	data := "style: MLA\ndocumentType: book\nauthor: {firstName: George, lastName: Orwell}\ntitle: '1984'\nyear: 1949\npublisher: Secker & Warburg\nedition: 2nd\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff([]types.Record{orwell1984}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading record file")

	_, err = Load(filepath.Join(dir, "records.csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"dir/b.json", FormatJSON},
		{"c.toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got)
	}
	_, err := FormatFromPath("noext")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     types.Record
		missing string
	}{
		{name: "complete", rec: orwell1984},
		{
			name:    "missing title",
			rec:     types.Record{Author: types.Person{LastName: "Orwell"}},
			missing: "title",
		},
		{
			name:    "blank author and title",
			rec:     types.Record{Author: types.Person{FirstName: "George", LastName: "  "}, Title: " "},
			missing: "author.lastName, title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMissingRequired)
			assert.Contains(t, err.Error(), "(missing "+tt.missing+")")
		})
	}
}
