package services

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"articles/pkg/models"
)

// SlugPrefix is the path every article slug lives under.
const SlugPrefix = "/articles/"

// MtimeLayout renders modification times as fixed-width sortable strings.
const MtimeLayout = "20060102150405"

// ArticleRepository reads article files from a single directory. It holds
// no state besides its configuration; every call reads the filesystem.
type ArticleRepository struct {
	dir    string
	ext    string
	format string
}

// NewArticleRepository returns a repository over the files named
// <basename>.<ext> directly under dir.
func NewArticleRepository(dir, ext string) (*ArticleRepository, error) {
	format, err := FormatForExt(ext)
	if err != nil {
		return nil, err
	}
	return &ArticleRepository{
		dir:    dir,
		ext:    strings.TrimPrefix(ext, "."),
		format: format,
	}, nil
}

// Dir returns the base directory.
func (r *ArticleRepository) Dir() string {
	return r.dir
}

// Ext returns the source file extension without the leading dot.
func (r *ArticleRepository) Ext() string {
	return r.ext
}

// CheckDir reports ErrNotFound when the base directory is missing.
func (r *ArticleRepository) CheckDir() error {
	info, err := os.Stat(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("article directory %s: %w", r.dir, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("article directory %s is not a directory: %w", r.dir, ErrNotFound)
	}
	return nil
}

// List returns a summary of every article file, most recently modified first.
func (r *ArticleRepository) List() ([]models.ArticleSummary, error) {
	if err := r.CheckDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	suffix := "." + r.ext
	articles := []models.ArticleSummary{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
			continue
		}
		path := filepath.Join(r.dir, name)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			// removed (or a dangling symlink) since ReadDir
			continue
		}
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		articles = append(articles, models.ArticleSummary{
			Slug:  SlugFromBasename(BasenameFromPath(path)),
			Mtime: FormatMtime(info.ModTime()),
		})
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Mtime > articles[j].Mtime
	})
	return articles, nil
}

// Get returns the validated article for slug. The slug may also be a bare
// basename; only its final path segment is used.
func (r *ArticleRepository) Get(slug string) (models.Article, error) {
	basename := BasenameFromSlug(slug)
	path := r.PathFromBasename(basename)
	if path == "" {
		return models.Article{}, fmt.Errorf("article %q: %w", basename, ErrNotFound)
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Article{}, fmt.Errorf("article %q: %w", basename, ErrNotFound)
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("article %q: %w", basename, err)
	}
	mtime, err := r.Mtime(path)
	if err != nil {
		return models.Article{}, fmt.Errorf("article %q: %w", basename, err)
	}

	doc, err := DecodeDocument(content, r.format)
	if err != nil {
		return models.Article{}, fmt.Errorf("article %q: %w: %v", basename, ErrInvalidArticle, err)
	}
	article, err := ValidateArticle(doc, slug, mtime)
	if err != nil {
		return models.Article{}, fmt.Errorf("article %q: %w", basename, err)
	}
	return article, nil
}

// PathFromBasename returns <dir>/<basename>.<ext>, or "" when basename
// is not a single path element.
func (r *ArticleRepository) PathFromBasename(basename string) string {
	path := safeJoin(r.dir, basename)
	if path == "" {
		return ""
	}
	return path + "." + r.ext
}

// Mtime returns the modification time of path formatted with MtimeLayout.
func (r *ArticleRepository) Mtime(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return FormatMtime(info.ModTime()), nil
}

// FormatMtime renders t in local time as YYYYMMDDHHMMSS.
func FormatMtime(t time.Time) string {
	return t.Local().Format(MtimeLayout)
}

// BasenameFromPath strips the directory and extension from path.
func BasenameFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// BasenameFromSlug percent-decodes slug and returns its final path segment.
// Malformed escapes are left as they are.
func BasenameFromSlug(slug string) string {
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		decoded = slug
	}
	return decoded[strings.LastIndex(decoded, "/")+1:]
}

// SlugFromBasename returns the percent-encoded public slug for basename.
func SlugFromBasename(basename string) string {
	return quote(SlugPrefix + basename)
}

const upperhex = "0123456789ABCDEF"

// quote percent-encodes every byte of s except '/' and the RFC 3986
// unreserved characters.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
