package schemacheck

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

// InputFormat is the serialisation of an input file.
type InputFormat int

const (
	InputJSON InputFormat = iota
	InputYAML
)

// InputFormatFor picks the format from the file extension.
func InputFormatFor(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return InputYAML
	default:
		return InputJSON
	}
}

// yamlToJSON re-encodes a YAML document as JSON so it goes through the same
// decoder as JSON input.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSchemaMismatch.Code, appErrors.ErrSchemaMismatch.Status, "malformed YAML")
	}
	out, err := json.Marshal(jsonCompatible(doc))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSchemaMismatch.Code, appErrors.ErrSchemaMismatch.Status, "YAML has no JSON equivalent")
	}
	return out, nil
}

// jsonCompatible rewrites maps with non-string keys, which encoding/json
// cannot marshal.
func jsonCompatible(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = jsonCompatible(child)
		}
		return node
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = jsonCompatible(child)
		}
		return out
	case []any:
		for i, child := range node {
			node[i] = jsonCompatible(child)
		}
		return node
	default:
		return v
	}
}
