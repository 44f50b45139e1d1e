package newick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		expectError bool
	}{
		{name: "flexible with support values", code: 0},
		{name: "flexible with internal node names", code: 1},
		{name: "strict supports", code: 2},
		{name: "leaf names", code: 9},
		{name: "topology only", code: 100},
		{name: "negative code", code: -1, expectError: true},
		{name: "out of range code", code: 10, expectError: true},
		{name: "out of range large code", code: 101, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDialect(tt.code)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, d.Code())
		})
	}
}

func TestDialects(t *testing.T) {
	ds := Dialects()
	require.Len(t, ds, 11)
	assert.Equal(t, FlexibleSupport, ds[0])
	assert.Equal(t, TopologyOnly, ds[len(ds)-1])

	for _, d := range ds {
		assert.NotContains(t, d.String(), "unknown")
	}
}
