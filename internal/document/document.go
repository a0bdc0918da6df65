// Package document renders a parsed event-data mapping as a JSON object.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{
	Indent:   "  ",
	SortKeys: true,
}

// Render returns the mapping as a pretty-printed JSON object with keys in
// sorted order. The result ends with a newline.
func Render(pairs map[string]string) ([]byte, error) {
	data, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return pretty.PrettyOptions(data, prettyOptions), nil
}
