package ops

import (
	"strings"

	"github.com/madprops/el/internal/element"
	"github.com/madprops/el/internal/errors"
	"github.com/madprops/el/internal/match"
)

// LookupInput contains parameters for the Lookup operation.
type LookupInput struct {
	Query string // name, symbol, or atomic number
}

// LookupOutput contains the result of the Lookup operation.
type LookupOutput struct {
	Element  element.Element `json:"element"`
	Match    match.Kind      `json:"match"`
	Distance int             `json:"distance,omitempty"`
}

// Lookup resolves a single element by name, symbol, or atomic number.
func Lookup(elements []element.Element, input LookupInput) (*LookupOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	res, ok := match.Find(elements, query)
	if !ok {
		return nil, errors.NewNotFound(query)
	}

	return &LookupOutput{
		Element:  res.Element,
		Match:    res.Kind,
		Distance: res.Distance,
	}, nil
}
