package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/models/response_models"
	"santara/internal/repositories"
	"santara/pkg/utils"
)

type ProvinceServiceInterface interface {
	ListProvinces(ctx context.Context) ([]response_models.ProvinceResponse, error)
	CreateProvince(ctx context.Context, name string) (*response_models.ProvinceResponse, error)
}

type ProvinceService struct {
	provinceRepository repositories.ProvinceRepository
}

func NewProvinceService(provinceRepository repositories.ProvinceRepository) ProvinceServiceInterface {
	return &ProvinceService{
		provinceRepository: provinceRepository,
	}
}

func (p *ProvinceService) ListProvinces(ctx context.Context) ([]response_models.ProvinceResponse, error) {
	provinces, err := p.provinceRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ProvinceResponse, 0, len(provinces))
	for _, province := range provinces {
		out = append(out, response_models.ProvinceResponse{
			ID:   province.ID.String(),
			Name: province.Name,
		})
	}
	return out, nil
}

func (p *ProvinceService) CreateProvince(ctx context.Context, name string) (*response_models.ProvinceResponse, error) {
	province := &db_models.Province{Name: strings.TrimSpace(name)}

	if err := p.provinceRepository.Create(ctx, province); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateProvince
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.ProvinceResponse{
		ID:   province.ID.String(),
		Name: province.Name,
	}, nil
}
