package element

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/madprops/el/internal/errors"
)

// Data taken from https://github.com/Bowserinator/Periodic-Table-JSON
//
//go:embed elements.json
var dataset []byte

var loadOnce = sync.OnceValues(func() ([]Element, error) {
	return Parse(dataset)
})

// Load returns the embedded collection. It is parsed on first use and shared
// afterwards; callers must treat it as read-only.
func Load() ([]Element, error) {
	return loadOnce()
}

// MustLoad is Load for entry points. The dataset ships with the binary, so a
// failure here is a build defect and panics.
func MustLoad() []Element {
	els, err := Load()
	if err != nil {
		panic(err)
	}
	return els
}

// Parse decodes a dataset document of the form {"elements": [...]} and
// validates it. Missing keys and JSON nulls leave the field absent.
func Parse(data []byte) ([]Element, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.NewDatasetInvalid(-1, "document is not valid JSON")
	}

	list := gjson.GetBytes(data, "elements")
	if !list.IsArray() {
		return nil, errors.NewDatasetInvalid(-1, `missing "elements" array`)
	}

	var els []Element
	if err := json.Unmarshal([]byte(list.Raw), &els); err != nil {
		return nil, errors.NewDatasetInvalid(-1, fmt.Sprintf("decode elements: %v", err))
	}

	if err := Validate(els); err != nil {
		return nil, err
	}
	return els, nil
}

// Validate checks the identity invariants the matcher and renderer rely on:
// every element has a name, a symbol and a positive number, and none of the
// three repeat (names and symbols compared case-insensitively).
func Validate(els []Element) error {
	numbers := make(map[uint32]int, len(els))
	names := make(map[string]int, len(els))
	symbols := make(map[string]int, len(els))

	for i, el := range els {
		switch {
		case el.Name == nil || strings.TrimSpace(*el.Name) == "":
			return errors.NewDatasetInvalid(i, "missing name")
		case el.Symbol == nil || strings.TrimSpace(*el.Symbol) == "":
			return errors.NewDatasetInvalid(i, "missing symbol")
		case el.Number == nil || *el.Number == 0:
			return errors.NewDatasetInvalid(i, "missing or zero atomic number")
		}

		if j, dup := numbers[*el.Number]; dup {
			return errors.NewDatasetInvalid(i, fmt.Sprintf("atomic number %d already used by element #%d", *el.Number, j))
		}
		numbers[*el.Number] = i

		name := strings.ToLower(*el.Name)
		if j, dup := names[name]; dup {
			return errors.NewDatasetInvalid(i, fmt.Sprintf("name %q already used by element #%d", *el.Name, j))
		}
		names[name] = i

		symbol := strings.ToLower(*el.Symbol)
		if j, dup := symbols[symbol]; dup {
			return errors.NewDatasetInvalid(i, fmt.Sprintf("symbol %q already used by element #%d", *el.Symbol, j))
		}
		symbols[symbol] = i
	}
	return nil
}
