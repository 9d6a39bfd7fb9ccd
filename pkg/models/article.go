package models

// Article is a validated article record read from a source file.
type Article struct {
	Slug    string   `json:"slug" yaml:"slug"`
	Title   string   `json:"title" yaml:"title"`
	Body    []string `json:"body" yaml:"body"`
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Mtime   string   `json:"mtime" yaml:"mtime"` // YYYYMMDDHHMMSS
}

// ArticleSummary is one entry of the article listing.
type ArticleSummary struct {
	Slug  string `json:"slug" yaml:"slug"`
	Mtime string `json:"mtime" yaml:"mtime"`
}
