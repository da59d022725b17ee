package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madprops/el/internal/element"
)

func testElements(t *testing.T) []element.Element {
	t.Helper()
	els, err := element.Load()
	require.NoError(t, err)
	return els
}
