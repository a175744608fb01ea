package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownInterest(t *testing.T) {
	entries := Lookup("Artificial Intelligence")
	require.Len(t, entries, 2)
	assert.Equal(t, "Machine Learning Engineer", entries[0].Path)
	assert.NotEmpty(t, entries[0].RequiredSkills)
}

func TestLookup_CaseAndWhitespaceInsensitive(t *testing.T) {
	tests := []string{
		"web development",
		"Web Development",
		"WEB DEVELOPMENT",
		"  Web Development  ",
	}

	for _, interest := range tests {
		t.Run(interest, func(t *testing.T) {
			assert.Len(t, Lookup(interest), 2)
		})
	}
}

func TestLookup_UnknownInterest(t *testing.T) {
	assert.Nil(t, Lookup("Extreme Ironing"))
	assert.Nil(t, Lookup(""))
}

func TestCatalog_PathNamesUnique(t *testing.T) {
	// Cross-interest dedup assumes globally unique path names.
	seen := make(map[string]string)
	for interest, entries := range paths {
		for _, entry := range entries {
			if prev, ok := seen[entry.Path]; ok {
				t.Errorf("path %q appears under both %q and %q", entry.Path, prev, interest)
			}
			seen[entry.Path] = interest
			assert.NotEmpty(t, entry.RequiredSkills, "path %q has no skills", entry.Path)
		}
	}
	assert.Len(t, paths, 10, "interest labels in the catalog")
}
