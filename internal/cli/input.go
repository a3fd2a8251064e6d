package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/archpad/archpad/pkg/codec"
	"github.com/archpad/archpad/pkg/dsl"
	"github.com/archpad/archpad/pkg/errors"
	"github.com/archpad/archpad/pkg/httputil"
	"github.com/archpad/archpad/pkg/model"
)

// readInput reads a diagram source from a file path, an http(s) URL, or
// from stdin when the path is "-" or empty.
func readInput(ctx context.Context, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return httputil.Fetch(ctx, nil, path)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return data, err
}

// importDiagram detects the format of pasted/loaded text and imports it:
// the structured JSON form goes through the codec (with defaults
// restored), DSL text goes through the parser. Unknown input is an
// error at the CLI boundary - the detector itself never fails.
func importDiagram(text []byte) (*model.Diagram, dsl.Format, error) {
	format := dsl.Detect(string(text))
	switch format {
	case dsl.FormatStructured:
		d := codec.ParseStructured(text)
		if d == nil {
			return nil, format, errors.New(errors.ErrCodeInvalidFormat, "structured input did not parse as a diagram")
		}
		return codec.Restore(d), format, nil
	case dsl.FormatDSL:
		return dsl.Parse(string(text)), format, nil
	default:
		return nil, format, errors.New(errors.ErrCodeInvalidFormat, "input is neither structured diagram JSON nor DSL text")
	}
}
