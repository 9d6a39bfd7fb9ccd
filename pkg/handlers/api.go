package handlers

import (
	"errors"
	"net/http"

	"articles/pkg/services"

	"github.com/gin-gonic/gin"
)

// ArticleHandler serves the read-only article API.
type ArticleHandler struct {
	Repo *services.ArticleRepository
}

func NewArticleHandler(repo *services.ArticleRepository) *ArticleHandler {
	return &ArticleHandler{Repo: repo}
}

// Register mounts the article routes under /api.
func (h *ArticleHandler) Register(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/articles", h.ListArticles)
		api.GET("/articles/:basename", h.GetArticle)
	}
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.Repo.List()
	if err != nil {
		c.Error(err)
		c.JSON(errorStatus(err), gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

type articleURI struct {
	Basename string `uri:"basename" binding:"required"`
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	var uri articleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article name"})
		return
	}

	article, err := h.Repo.Get(uri.Basename)
	if err != nil {
		c.Error(err)
		status := errorStatus(err)
		switch status {
		case http.StatusNotFound:
			c.JSON(status, gin.H{"error": "Article not found"})
		case http.StatusUnprocessableEntity:
			c.JSON(status, gin.H{"error": "Invalid article", "detail": err.Error()})
		default:
			c.JSON(status, gin.H{"error": "Failed to read article"})
		}
		return
	}
	c.JSON(http.StatusOK, article)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidArticle):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
