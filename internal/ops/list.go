package ops

import (
	"sort"
	"strings"

	"github.com/madprops/el/internal/element"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Category string // optional, case-insensitive exact match
	Phase    string // optional, case-insensitive exact match
	Period   int    // optional, 0 = any
	Limit    int    // default: 20, max: 200
	Offset   int    // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []element.Summary `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Sort       string            `json:"sort"`
}

// List returns element summaries ordered by atomic number, filtered and paginated.
func List(elements []element.Element, input ListInput) (*ListOutput, error) {
	// Apply limit defaults and bounds
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	// Ensure offset is non-negative
	offset := max(input.Offset, 0)

	category := strings.ToLower(strings.TrimSpace(input.Category))
	phase := strings.ToLower(strings.TrimSpace(input.Phase))

	matched := make([]element.Summary, 0, len(elements))
	for _, el := range elements {
		s := el.ToSummary()
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if phase != "" && strings.ToLower(s.Phase) != phase {
			continue
		}
		if input.Period > 0 && int(s.Period) != input.Period {
			continue
		}
		matched = append(matched, s)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Number < matched[j].Number
	})

	total := len(matched)
	start := min(offset, total)
	end := min(start+limit, total)

	// Copy so the result never aliases the filter buffer
	items := append([]element.Summary{}, matched[start:end]...)

	return &ListOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
			Total:   total,
		},
		Sort: "number_asc",
	}, nil
}
