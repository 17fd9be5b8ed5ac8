package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "plain paragraphs",
			fragment: "<p>Handcrafted magnets.</p><p>Ships in 3 days.</p>",
			expected: "Handcrafted magnets.Ships in 3 days.",
		},
		{
			name:     "nested markup",
			fragment: "<div>A <strong>set of four</strong>\n  fridge magnets</div>",
			expected: "A set of four fridge magnets",
		},
		{
			name:     "drops script and style",
			fragment: "<style>.a{}</style><p>Photo magnets</p><script>var x=1</script>",
			expected: "Photo magnets",
		},
		{
			name:     "empty",
			fragment: "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ExtractText(tc.fragment))
		})
	}
}
