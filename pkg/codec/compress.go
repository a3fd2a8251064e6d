package codec

import (
	"encoding/base64"
	"encoding/json"

	"github.com/golang/snappy"

	"github.com/archpad/archpad/pkg/errors"
	"github.com/archpad/archpad/pkg/model"
)

// Compress serializes the optimized diagram to JSON, compresses it with
// snappy, and wraps the result in the base64 URL alphabet (unpadded), so
// it can be embedded directly in a URL query parameter.
//
// Returns ErrCodeEncoding if the diagram is nil or the encoder produces
// an empty result.
func Compress(d *model.Diagram) (string, error) {
	if d == nil {
		return "", errors.New(errors.ErrCodeEncoding, "nothing to compress")
	}

	data, err := json.Marshal(Optimize(d))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "marshal diagram")
	}

	encoded := base64.RawURLEncoding.EncodeToString(snappy.Encode(nil, data))
	if encoded == "" {
		return "", errors.New(errors.ErrCodeEncoding, "empty encoder output")
	}
	return encoded, nil
}

// Decompress is the inverse of Compress. When the primary decoder fails
// and allowLegacyFallback is set, the input is retried as a legacy
// payload: plain base64 of the structured JSON, the form produced by the
// historical encoder that predates compression.
//
// Decompress never fails - empty input, corrupt text, and data that does
// not parse as a diagram envelope all return nil, because absent or
// broken share data is an expected case on the read path.
func Decompress(text string, allowLegacyFallback bool) *model.Diagram {
	if text == "" {
		return nil
	}

	if raw, err := base64.RawURLEncoding.DecodeString(text); err == nil {
		if data, err := snappy.Decode(nil, raw); err == nil {
			if d := ParseStructured(data); d != nil {
				return Restore(d)
			}
		}
	}

	if allowLegacyFallback {
		if data, err := base64.StdEncoding.DecodeString(text); err == nil {
			if d := ParseStructured(data); d != nil {
				return Restore(d)
			}
		}
	}
	return nil
}

// ParseStructured decodes JSON bytes into a diagram envelope, requiring
// a recognizable marker (a format version or at least one collection).
// Arbitrary JSON such as "{}" does not count as a diagram. Returns nil
// on any failure; the result is not default-restored - pass it through
// Restore before use.
//
// The structured form is also accepted directly as pasted import text,
// which is why this is exported rather than private to Decompress.
func ParseStructured(data []byte) *model.Diagram {
	var d model.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil
	}
	if d.FormatVersion == 0 && d.Nodes == nil && d.Groups == nil && d.Edges == nil {
		return nil
	}
	return &d
}

// EncodeLegacy produces the legacy fixed-alphabet form: plain base64 of
// the optimized JSON. Kept so previously issued links stay reproducible
// in tests; new links always use Compress.
func EncodeLegacy(d *model.Diagram) (string, error) {
	if d == nil {
		return "", errors.New(errors.ErrCodeEncoding, "nothing to encode")
	}
	data, err := json.Marshal(Optimize(d))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "marshal diagram")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
