package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"santara/internal/models/request_models"
	"santara/internal/repositories"
	"santara/internal/services"
	"santara/pkg/utils"
)

// Default page size for article listings.
const articleDefaultLimit = 20

type ArticlesController struct {
	articleService services.ArticleServiceInterface
}

func NewArticlesController(articleService services.ArticleServiceInterface) *ArticlesController {
	return &ArticlesController{
		articleService: articleService,
	}
}

func (a *ArticlesController) ListArticles(c *gin.Context) {
	limit := atoiOrZero(c.Query("limit"))
	if limit == 0 {
		limit = articleDefaultLimit
	}

	query := repositories.ArticleQuery{
		Q:      c.Query("q"),
		Tag:    c.Query("tag"),
		Limit:  limit,
		Offset: atoiOrZero(c.Query("offset")),
		Asc:    strings.EqualFold(c.Query("order"), "asc"),
	}

	articles, err := a.articleService.ListArticles(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (a *ArticlesController) GetArticle(c *gin.Context) {
	article, err := a.articleService.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (a *ArticlesController) CreateArticle(c *gin.Context) {
	var req request_models.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		utils.RespondError(c, http.StatusBadRequest, "title is required")
		return
	}

	article, err := a.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}
