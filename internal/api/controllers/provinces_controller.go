package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"santara/internal/models/request_models"
	"santara/internal/services"
	"santara/pkg/utils"
)

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
}

func NewProvincesController(provinceService services.ProvinceServiceInterface) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
	}
}

// GetAllProvinces godoc
// @Summary List provinces
// @Description Fetch all provinces sorted by name
// @Tags Provinces
// @Produce json
// @Success 200 {array} response_models.ProvinceResponse
// @Router /api/provinces [get]
func (p *ProvincesController) GetAllProvinces(c *gin.Context) {
	provinces, err := p.provinceService.ListProvinces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provinces)
}

func (p *ProvincesController) CreateProvince(c *gin.Context) {
	var req request_models.ProvinceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	province, err := p.provinceService.CreateProvince(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, province)
}
