package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"articles/pkg/config"
	"articles/pkg/services"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

type options struct {
	slug     string
	basename string
	path     string
}

type command struct {
	help string
	run  func(repo *services.ArticleRepository, opts options) (any, error)
}

var commands = map[string]command{
	"list": {
		help: "List article slugs, most recently modified first",
		run: func(repo *services.ArticleRepository, _ options) (any, error) {
			return repo.List()
		},
	},
	"get": {
		help: "Print the validated article for --slug",
		run: func(repo *services.ArticleRepository, opts options) (any, error) {
			if opts.slug == "" {
				return nil, usageErrorf("get requires --slug")
			}
			return repo.Get(opts.slug)
		},
	},
	"slug": {
		help: "Print the slug for --basename",
		run: func(_ *services.ArticleRepository, opts options) (any, error) {
			if opts.basename == "" {
				return nil, usageErrorf("slug requires --basename")
			}
			return services.SlugFromBasename(opts.basename), nil
		},
	},
	"basename": {
		help: "Print the basename for --slug or --path",
		run: func(_ *services.ArticleRepository, opts options) (any, error) {
			switch {
			case opts.slug != "":
				return services.BasenameFromSlug(opts.slug), nil
			case opts.path != "":
				return services.BasenameFromPath(opts.path), nil
			}
			return nil, usageErrorf("basename requires --slug or --path")
		},
	},
	"path": {
		help: "Print the article file path for --basename",
		run: func(repo *services.ArticleRepository, opts options) (any, error) {
			if opts.basename == "" {
				return nil, usageErrorf("path requires --basename")
			}
			path := repo.PathFromBasename(opts.basename)
			if path == "" {
				return nil, usageErrorf("invalid basename %q", opts.basename)
			}
			return path, nil
		},
	},
	"mtime": {
		help: "Print the modification time of --path",
		run: func(repo *services.ArticleRepository, opts options) (any, error) {
			if opts.path == "" {
				return nil, usageErrorf("mtime requires --path")
			}
			return repo.Mtime(opts.path)
		},
	},
}

var commandOrder = []string{"list", "get", "slug", "basename", "path", "mtime"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			printUsage(stdout)
			return 0
		}
	}

	err := dispatch(args, stdout)
	if err == nil {
		return 0
	}

	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr)
		return 2
	case errors.Is(err, services.ErrNotFound):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 3
	case errors.Is(err, services.ErrInvalidArticle):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 4
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func dispatch(args []string, stdout io.Writer) error {
	if len(args) < 2 {
		return usageErrorf("expected <command> <directory>")
	}
	name, dir := args[0], args[1]

	if strings.HasPrefix(name, "_") {
		return usageErrorf("unknown command: %s", name)
	}
	cmd, ok := commands[name]
	if !ok {
		return usageErrorf("unknown command: %s", name)
	}

	var opts options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.slug, "slug", "", "URI slug to pass to the command")
	fs.StringVar(&opts.basename, "basename", "", "Common name for an article")
	fs.StringVar(&opts.path, "path", "", "Path to an article")
	ext := fs.String("ext", config.DefaultArticlesExt, "Article file extension")
	if err := fs.Parse(args[2:]); err != nil {
		return usageErrorf("%v", err)
	}
	if fs.NArg() > 0 {
		return usageErrorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	repo, err := services.NewArticleRepository(dir, *ext)
	if err != nil {
		return usageErrorf("%v", err)
	}

	result, err := cmd.run(repo, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `articles - read article files from a directory

Usage:
  articles <command> <directory> [--slug S] [--basename B] [--path P] [--ext E]

Commands:`)
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].help)
	}
	fmt.Fprintln(w, `
Examples:
  articles list ./articles
  articles get ./articles --slug /articles/first`)
}
