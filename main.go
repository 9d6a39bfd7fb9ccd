package main

import (
	"log"

	"articles/pkg/config"
	"articles/pkg/handlers"
	"articles/pkg/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	repo, err := services.NewArticleRepository(cfg.ArticlesDir, cfg.ArticlesExt)
	if err != nil {
		log.Fatalf("articles: %v", err)
	}
	// A missing article directory is a deployment error, not an empty site.
	if err := repo.CheckDir(); err != nil {
		log.Fatalf("articles: %v", err)
	}

	r := gin.Default()
	handlers.NewArticleHandler(repo).Register(r)

	log.Printf("Serving %s/*.%s on %s", repo.Dir(), repo.Ext(), cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("articles: %v", err)
	}
}
