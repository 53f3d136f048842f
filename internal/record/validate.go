// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// ErrMissingRequired is returned by Validate when the author last name or the
// title is blank.
var ErrMissingRequired = errors.New("please fill in at least the author and title fields")

// required lists the fields every record must carry before it is formatted.
type required struct {
	AuthorLastName string `validate:"required" field:"author.lastName"`
	Title          string `validate:"required" field:"title"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	return v
}

// Validate checks that rec has an author last name and a title. Style and
// document type are not checked: the formatter renders unknown values with
// its fallback.
func Validate(rec types.Record) error {
	err := validate.Struct(required{
		AuthorLastName: strings.TrimSpace(rec.Author.LastName),
		Title:          strings.TrimSpace(rec.Title),
	})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, len(verrs))
	for i, fe := range verrs {
		missing[i] = fe.Field()
	}
	return fmt.Errorf("%w (missing %s)", ErrMissingRequired, strings.Join(missing, ", "))
}
