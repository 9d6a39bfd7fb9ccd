package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ARTICLES_DIR", "")
	t.Setenv("ARTICLES_EXT", "")
	t.Setenv("SERVER_ADDR", "")

	cfg := FromEnv()
	if cfg.ArticlesDir != DefaultArticlesDir {
		t.Fatalf("ArticlesDir = %q, want %q", cfg.ArticlesDir, DefaultArticlesDir)
	}
	if cfg.ArticlesExt != DefaultArticlesExt {
		t.Fatalf("ArticlesExt = %q, want %q", cfg.ArticlesExt, DefaultArticlesExt)
	}
	if cfg.ServerAddr != DefaultServerAddr {
		t.Fatalf("ServerAddr = %q, want %q", cfg.ServerAddr, DefaultServerAddr)
	}
}

func TestFromEnvHonorsOverrides(t *testing.T) {
	t.Setenv("ARTICLES_DIR", "/srv/articles")
	t.Setenv("ARTICLES_EXT", "toml")
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")

	cfg := FromEnv()
	if cfg.ArticlesDir != "/srv/articles" {
		t.Fatalf("ArticlesDir = %q, want %q", cfg.ArticlesDir, "/srv/articles")
	}
	if cfg.ArticlesExt != "toml" {
		t.Fatalf("ArticlesExt = %q, want %q", cfg.ArticlesExt, "toml")
	}
	if cfg.ServerAddr != "127.0.0.1:9000" {
		t.Fatalf("ServerAddr = %q, want %q", cfg.ServerAddr, "127.0.0.1:9000")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set
	t.Setenv("ARTICLES_DIR", "")
	os.Unsetenv("ARTICLES_DIR")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ARTICLES_DIR=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg := Load()
	if cfg.ArticlesDir != "from-dotenv" {
		t.Fatalf("ArticlesDir = %q, want %q", cfg.ArticlesDir, "from-dotenv")
	}
}
