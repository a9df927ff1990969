package sectionref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		rawAddr      string
		expectErr    bool
		expectedAddr Address
	}{
		{
			name:    "simple path",
			rawAddr: "workflow.method",
			expectedAddr: Address{
				Path: []Segment{NewSegment("workflow"), NewSegment("method")},
			},
		},
		{
			name:    "indexed path",
			rawAddr: "run[2].method[0].photon",
			expectedAddr: Address{
				Path: []Segment{
					NewSegmentWithIndex("run", 2),
					NewSegmentWithIndex("method", 0),
					NewSegment("photon"),
				},
			},
		},
		{
			name:    "zero index",
			rawAddr: "run[0].calculation[0]",
			expectedAddr: Address{
				Path: []Segment{
					NewSegmentWithIndex("run", 0),
					NewSegmentWithIndex("calculation", 0),
				},
			},
		},
		{name: "error - empty string", rawAddr: "", expectErr: true},
		{name: "error - empty segment", rawAddr: "run..method", expectErr: true},
		{name: "error - non-numeric index", rawAddr: "run[x]", expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			addr, err := Parse(tc.rawAddr)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expectedAddr.Equal(addr), "expected %s, got %s", tc.expectedAddr, addr)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	addr := Address{}.ChildAt("run", 3).ChildAt("method", 1).Child("photon")
	assert.Equal(t, "run[3].method[1].photon", addr.String())

	parsed, err := Parse(addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equal(parsed))
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	addr := Address{}.ChildAt("run", 0).Child("system")
	text, err := addr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "run[0].system", string(text))

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, addr.Equal(decoded))
}
