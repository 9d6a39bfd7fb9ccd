package services

import (
	"fmt"
	"strconv"
	"time"

	"articles/pkg/models"
)

// ValidateArticle builds an Article from a decoded document. The slug and
// mtime are supplied by the repository and are not read from the document.
func ValidateArticle(doc map[string]interface{}, slug, mtime string) (models.Article, error) {
	title, ok := doc["title"]
	if !ok {
		return models.Article{}, fmt.Errorf("%w: missing key %q", ErrInvalidArticle, "title")
	}
	body, ok := doc["body"]
	if !ok {
		return models.Article{}, fmt.Errorf("%w: missing key %q", ErrInvalidArticle, "body")
	}
	enabled, err := validateEnabled(doc)
	if err != nil {
		return models.Article{}, err
	}

	return models.Article{
		Slug:    slug,
		Title:   ToString(title),
		Body:    validateBody(body),
		Enabled: enabled,
		Mtime:   mtime,
	}, nil
}

// validateBody returns body paragraphs as strings, wrapping a single value.
func validateBody(body interface{}) []string {
	list, ok := body.([]interface{})
	if !ok {
		return []string{ToString(body)}
	}
	paragraphs := make([]string, 0, len(list))
	for _, p := range list {
		paragraphs = append(paragraphs, ToString(p))
	}
	return paragraphs
}

func validateEnabled(doc map[string]interface{}) (bool, error) {
	v, ok := doc["enabled"]
	if !ok {
		return true, nil
	}
	enabled, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: enabled must be a boolean, got %T", ErrInvalidArticle, v)
	}
	return enabled, nil
}

// ToString converts a decoded scalar to its string form. It is total: values
// that are not scalars fall back to fmt.Sprint.
func ToString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", s)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", s)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case time.Time:
		return s.Format(time.RFC3339)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
