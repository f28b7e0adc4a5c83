package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/models/request_models"
	"santara/internal/models/response_models"
	"santara/internal/repositories"
	"santara/pkg/utils"
)

type TenunServiceInterface interface {
	ListTenun(ctx context.Context, provinceName string, aliasName bool) ([]response_models.TenunResponse, error)
	CreateTenun(ctx context.Context, req request_models.TenunCreateRequest, aliasName bool) (*response_models.TenunResponse, error)
}

type TenunService struct {
	tenunRepository    repositories.TenunRepository
	provinceRepository repositories.ProvinceRepository
	images             *ImageResolver
}

func NewTenunService(
	tenunRepository repositories.TenunRepository,
	provinceRepository repositories.ProvinceRepository,
	images *ImageResolver,
) TenunServiceInterface {
	return &TenunService{
		tenunRepository:    tenunRepository,
		provinceRepository: provinceRepository,
		images:             images,
	}
}

func (t *TenunService) ListTenun(ctx context.Context, provinceName string, aliasName bool) ([]response_models.TenunResponse, error) {
	items, err := t.tenunRepository.List(ctx, provinceName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.TenunResponse, 0, len(items))
	for _, item := range items {
		out = append(out, t.toResponse(item, aliasName))
	}
	return out, nil
}

func (t *TenunService) CreateTenun(ctx context.Context, req request_models.TenunCreateRequest, aliasName bool) (*response_models.TenunResponse, error) {
	province, err := t.provinceRepository.GetByName(ctx, strings.TrimSpace(req.ProvinceName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if province == nil {
		return nil, utils.ErrProvinceNotFound
	}

	name := strings.TrimSpace(req.JenisTenun)
	if name == "" {
		name = strings.TrimSpace(req.Name)
	}

	item := &db_models.Tenun{
		JenisTenun:  name,
		Description: req.Description,
		ProvinceID:  province.ID,
	}
	if img := strings.TrimSpace(req.ImageURL); img != "" {
		item.ImageURL = &img
	}

	if err := t.tenunRepository.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateTenun
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	item.Province = province
	resp := t.toResponse(*item, aliasName)
	return &resp, nil
}

// toResponse augments a row with auto-discovered images. A stored
// imageUrl wins over the tenun auto scan; pemakaian is always scanned.
func (t *TenunService) toResponse(item db_models.Tenun, aliasName bool) response_models.TenunResponse {
	provinceName := ""
	var province *response_models.ProvinceResponse
	if item.Province != nil {
		provinceName = item.Province.Name
		province = &response_models.ProvinceResponse{
			ID:   item.Province.ID.String(),
			Name: item.Province.Name,
		}
	}

	tenunImage := item.ImageURL
	if tenunImage == nil {
		tenunImage = t.images.TenunImage(provinceName)
	}

	resp := response_models.TenunResponse{
		ID:                item.ID.String(),
		JenisTenun:        item.JenisTenun,
		Description:       item.Description,
		ImageURL:          item.ImageURL,
		ProvinceID:        item.ProvinceID.String(),
		Province:          province,
		TenunImageURL:     tenunImage,
		PemakaianImageURL: t.images.PemakaianImage(provinceName),
		CreatedAt:         item.CreatedAt,
	}
	if aliasName {
		resp.Name = item.JenisTenun
	}
	return resp
}
