package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"santara/internal/models/request_models"
	"santara/internal/services"
	"santara/pkg/utils"
)

type TenunController struct {
	tenunService services.TenunServiceInterface
}

func NewTenunController(tenunService services.TenunServiceInterface) *TenunController {
	return &TenunController{
		tenunService: tenunService,
	}
}

// GetAllTenun godoc
// @Summary List weaving items
// @Description Fetch weaving items, optionally filtered by province, with derived image URLs
// @Tags Tenun
// @Produce json
// @Param province query string false "Province name filter"
// @Success 200 {array} response_models.TenunResponse
// @Router /api/tenun [get]
func (t *TenunController) GetAllTenun(c *gin.Context) {
	t.list(c, false)
}

func (t *TenunController) CreateTenun(c *gin.Context) {
	var req request_models.TenunCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.JenisTenun) == "" || strings.TrimSpace(req.ProvinceName) == "" {
		utils.RespondError(c, http.StatusBadRequest, "jenisTenun and provinceName are required")
		return
	}
	t.create(c, req, false)
}

// GetAllOutfits is the /outfits alias: same rows, the weaving name is
// echoed back as "name".
func (t *TenunController) GetAllOutfits(c *gin.Context) {
	t.list(c, true)
}

func (t *TenunController) CreateOutfit(c *gin.Context) {
	var req request_models.TenunCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.ProvinceName) == "" {
		utils.RespondError(c, http.StatusBadRequest, "name and provinceName are required")
		return
	}
	t.create(c, req, true)
}

func (t *TenunController) list(c *gin.Context, aliasName bool) {
	province := c.Query("province")

	items, err := t.tenunService.ListTenun(c.Request.Context(), province, aliasName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (t *TenunController) create(c *gin.Context, req request_models.TenunCreateRequest, aliasName bool) {
	item, err := t.tenunService.CreateTenun(c.Request.Context(), req, aliasName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
