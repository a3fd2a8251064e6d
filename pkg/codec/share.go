package codec

import (
	"fmt"
	"net/url"

	"github.com/archpad/archpad/pkg/errors"
	"github.com/archpad/archpad/pkg/model"
)

// DataParam is the query parameter carrying the compressed diagram.
const DataParam = "data"

// BuildShareLink returns base + "?data=" + Compress(d).
// Returns ErrCodeGeneration when compression fails.
func BuildShareLink(d *model.Diagram, base string) (string, error) {
	encoded, err := Compress(d)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeGeneration, err, "build share link")
	}
	return fmt.Sprintf("%s?%s=%s", base, DataParam, encoded), nil
}

// ParseShareLink extracts the data query parameter from a share link and
// decodes it with the legacy fallback enabled. Returns nil when the URL
// is unparseable, the parameter is absent, or the payload is corrupt.
func ParseShareLink(link string) *model.Diagram {
	u, err := url.Parse(link)
	if err != nil {
		return nil
	}
	data := u.Query().Get(DataParam)
	if data == "" {
		return nil
	}
	return Decompress(data, true)
}
