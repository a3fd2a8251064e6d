package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archpad/archpad/pkg/errors"
	"github.com/archpad/archpad/pkg/model"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	d := Restore(fullDiagram())

	encoded, err := Compress(d)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	got := Decompress(encoded, false)
	require.NotNil(t, got)
	assert.Equal(t, d, got)
}

func TestCompressOutputIsURLSafe(t *testing.T) {
	encoded, err := Compress(fullDiagram())
	require.NoError(t, err)

	for _, r := range encoded {
		ok := r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_'
		assert.True(t, ok, "character %q not URL-safe", r)
	}
}

func TestCompressNilDiagram(t *testing.T) {
	_, err := Compress(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeEncoding))
}

func TestDecompressBadInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Garbage", "!!!not base64!!!"},
		{"ValidBase64NotSnappy", "aGVsbG8td29ybGQ"},
		{"LegacyGarbageJSON", "bm90IGpzb24="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Decompress(tt.text, true), "corrupt input must decode to nil, never fail")
		})
	}
}

func TestDecompressLegacyFallback(t *testing.T) {
	d := Restore(fullDiagram())

	legacy, err := EncodeLegacy(d)
	require.NoError(t, err)

	assert.Nil(t, Decompress(legacy, false), "legacy payload must not decode without the fallback flag")

	got := Decompress(legacy, true)
	require.NotNil(t, got)
	assert.Equal(t, d, got)
}

func TestParseStructuredRequiresMarker(t *testing.T) {
	assert.Nil(t, ParseStructured([]byte(`{}`)))
	assert.Nil(t, ParseStructured([]byte(`{"foo": 1}`)))
	assert.Nil(t, ParseStructured([]byte(`not json`)))
	assert.NotNil(t, ParseStructured([]byte(`{"formatVersion": 2, "nodes": [], "groups": [], "edges": []}`)))
	assert.NotNil(t, ParseStructured([]byte(`{"nodes": [{"id": "a", "baseName": "EC2"}]}`)))
}

func TestShareLinkRoundTrip(t *testing.T) {
	d := Restore(fullDiagram())

	link, err := BuildShareLink(d, "https://archpad.dev/canvas")
	require.NoError(t, err)
	assert.Contains(t, link, "?data=")

	got := ParseShareLink(link)
	require.NotNil(t, got)
	assert.Equal(t, d, got)
}

func TestBuildShareLinkNilDiagram(t *testing.T) {
	_, err := BuildShareLink(nil, "https://archpad.dev/canvas")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGeneration))
}

func TestParseShareLinkMissingData(t *testing.T) {
	assert.Nil(t, ParseShareLink("https://archpad.dev/canvas"))
	assert.Nil(t, ParseShareLink("https://archpad.dev/canvas?other=1"))
	assert.Nil(t, ParseShareLink("https://archpad.dev/canvas?data=corrupt"))
	assert.Nil(t, ParseShareLink("::not a url::"))
}

// singleNodeDiagram reproduces the one-node share scenario: an EC2 node
// with no display override survives the full compress/decompress cycle
// and still resolves its label.
func TestSingleNodeScenario(t *testing.T) {
	d := model.New()
	d.Nodes = []model.Node{{ID: "ec2-1", BaseName: "EC2", X: 100, Y: 100}}

	encoded, err := Compress(d)
	require.NoError(t, err)

	got := Decompress(encoded, false)
	require.NotNil(t, got)
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "EC2", got.Nodes[0].Label())
}

func TestCheckSizeBudget(t *testing.T) {
	d := model.New()
	for i := 0; i < 50; i++ {
		d.Nodes = append(d.Nodes, model.Node{
			ID:       fmt.Sprintf("node-%02d", i),
			BaseName: "EC2",
			Color:    "#ED7100",
			Category: "compute",
			X:        float64(i%4) * 180,
			Y:        float64(i/4) * 140,
		})
	}

	encoded, err := Compress(d)
	require.NoError(t, err)
	exactKB := float64(len(encoded)) / 1024

	report, err := CheckSizeBudget(d, 20)
	require.NoError(t, err)
	assert.Equal(t, exactKB <= 20, report.WithinBudget)
	assert.InDelta(t, exactKB, report.CompressedSizeKB, 0.005, "reported size rounded to 2 decimals")
	assert.Greater(t, report.OriginalSizeKB, 0.0)

	tight, err := CheckSizeBudget(d, report.CompressedSizeKB/2)
	require.NoError(t, err)
	assert.False(t, tight.WithinBudget)
}
