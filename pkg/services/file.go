package services

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source formats understood by DecodeDocument.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatForExt maps a file extension (with or without the leading dot)
// to the document format used to decode it.
func FormatForExt(ext string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported article extension: %q", ext)
}

// DecodeDocument parses content as a key-value document in the given format.
// An empty document decodes to an empty map.
func DecodeDocument(content []byte, format string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &doc)
	case FormatTOML:
		err = toml.Unmarshal(content, &doc)
	case FormatJSON:
		err = json.Unmarshal(content, &doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

// safeJoin joins dir and a single path element, returning "" when the
// element is empty, a dot entry or contains a separator.
func safeJoin(dir, name string) string {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return ""
	}
	return filepath.Join(dir, name)
}
