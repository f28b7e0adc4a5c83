package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"santara/internal/models/request_models"
	"santara/internal/repositories"
	"santara/internal/services"
	"santara/pkg/utils"
)

type InspoController struct {
	inspoService services.InspoServiceInterface
}

func NewInspoController(inspoService services.InspoServiceInterface) *InspoController {
	return &InspoController{
		inspoService: inspoService,
	}
}

// ListInspo godoc
// @Summary List outfit inspirations
// @Description Filter by free text, gender and pagination window
// @Tags Inspo
// @Produce json
// @Param q query string false "Search term, also matched against tags"
// @Param gender query string false "MEN, WOMEN or UNISEX"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Param order query string false "asc or desc on createdAt (default desc)"
// @Success 200 {array} db_models.OutfitInspo
// @Router /api/inspo [get]
func (i *InspoController) ListInspo(c *gin.Context) {
	query := repositories.InspoQuery{
		Q:      c.Query("q"),
		Gender: c.Query("gender"),
		Limit:  atoiOrZero(c.Query("limit")),
		Offset: atoiOrZero(c.Query("offset")),
		Asc:    strings.EqualFold(c.Query("order"), "asc"),
	}

	items, err := i.inspoService.ListInspo(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (i *InspoController) RandomInspo(c *gin.Context) {
	items, err := i.inspoService.RandomInspo(c.Request.Context(), atoiOrZero(c.Query("limit")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (i *InspoController) GetInspo(c *gin.Context) {
	item, err := i.inspoService.GetInspo(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (i *InspoController) CreateInspo(c *gin.Context) {
	var req request_models.InspoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ImageURL) == "" {
		utils.RespondError(c, http.StatusBadRequest, "title and imageUrl are required")
		return
	}

	item, err := i.inspoService.CreateInspo(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (i *InspoController) UpdateInspo(c *gin.Context) {
	var req request_models.InspoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := i.inspoService.UpdateInspo(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (i *InspoController) DeleteInspo(c *gin.Context) {
	if err := i.inspoService.DeleteInspo(c.Request.Context(), c.Param("slug")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
