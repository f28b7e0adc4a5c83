package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/models/request_models"
	"santara/internal/repositories"
	"santara/pkg/utils"
)

// Bounds for the random endpoint window.
const (
	randomDefaultLimit = 6
	randomMaxLimit     = 50
)

type InspoServiceInterface interface {
	ListInspo(ctx context.Context, q repositories.InspoQuery) ([]db_models.OutfitInspo, error)
	RandomInspo(ctx context.Context, limit int) ([]db_models.OutfitInspo, error)
	GetInspo(ctx context.Context, slug string) (*db_models.OutfitInspo, error)
	CreateInspo(ctx context.Context, req request_models.InspoCreateRequest) (*db_models.OutfitInspo, error)
	UpdateInspo(ctx context.Context, slug string, req request_models.InspoUpdateRequest) (*db_models.OutfitInspo, error)
	DeleteInspo(ctx context.Context, slug string) error
}

type InspoService struct {
	inspoRepository repositories.InspoRepository
}

func NewInspoService(inspoRepository repositories.InspoRepository) InspoServiceInterface {
	return &InspoService{
		inspoRepository: inspoRepository,
	}
}

func (s *InspoService) ListInspo(ctx context.Context, q repositories.InspoQuery) ([]db_models.OutfitInspo, error) {
	q.Gender = strings.ToUpper(strings.TrimSpace(q.Gender))

	items, err := s.inspoRepository.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if items == nil {
		items = []db_models.OutfitInspo{}
	}
	return items, nil
}

// RandomInspo serves a random contiguous window instead of a full-table
// shuffle, so it stays cheap on large tables and never duplicates rows.
func (s *InspoService) RandomInspo(ctx context.Context, limit int) ([]db_models.OutfitInspo, error) {
	size := ClampRandomLimit(limit)

	count, err := s.inspoRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if count == 0 {
		return []db_models.OutfitInspo{}, nil
	}

	maxStart := int(count) - size
	if maxStart < 0 {
		maxStart = 0
	}
	skip := rand.Intn(maxStart + 1)

	items, err := s.inspoRepository.Window(ctx, size, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return items, nil
}

// ClampRandomLimit applies the default and the 1-50 bounds.
func ClampRandomLimit(limit int) int {
	if limit <= 0 {
		return randomDefaultLimit
	}
	if limit > randomMaxLimit {
		return randomMaxLimit
	}
	return limit
}

func (s *InspoService) GetInspo(ctx context.Context, slug string) (*db_models.OutfitInspo, error) {
	inspo, err := s.inspoRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if inspo == nil {
		return nil, utils.ErrNotFound
	}
	return inspo, nil
}

func (s *InspoService) CreateInspo(ctx context.Context, req request_models.InspoCreateRequest) (*db_models.OutfitInspo, error) {
	gender, err := normalizeGender(req.Gender)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	slug, err := ensureUniqueSlug(ctx, s.inspoRepository.SlugExists, title)
	if err != nil {
		return nil, err
	}

	inspo := &db_models.OutfitInspo{
		Slug:      slug,
		Title:     title,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Credit:    optional(req.Credit),
		SourceURL: optional(req.SourceURL),
		Gender:    gender,
		Tags:      toStringArray(req.Tags),
	}

	if err := s.inspoRepository.Create(ctx, inspo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return inspo, nil
}

func (s *InspoService) UpdateInspo(ctx context.Context, slug string, req request_models.InspoUpdateRequest) (*db_models.OutfitInspo, error) {
	inspo, err := s.inspoRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if inspo == nil {
		return nil, utils.ErrNotFound
	}

	if req.Title != nil {
		inspo.Title = strings.TrimSpace(*req.Title)
	}
	if req.ImageURL != nil {
		inspo.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Credit != nil {
		inspo.Credit = optional(*req.Credit)
	}
	if req.SourceURL != nil {
		inspo.SourceURL = optional(*req.SourceURL)
	}
	if req.Gender != nil {
		gender, err := normalizeGender(*req.Gender)
		if err != nil {
			return nil, err
		}
		inspo.Gender = gender
	}
	if req.Tags != nil {
		inspo.Tags = toStringArray(*req.Tags)
	}

	if err := s.inspoRepository.Save(ctx, inspo); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return inspo, nil
}

func (s *InspoService) DeleteInspo(ctx context.Context, slug string) error {
	affected, err := s.inspoRepository.DeleteBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// normalizeGender uppercases and validates against the enum. Empty means
// "not set" and maps to nil.
func normalizeGender(s string) (*string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	switch s {
	case db_models.GenderMen, db_models.GenderWomen, db_models.GenderUnisex:
		return &s, nil
	default:
		return nil, utils.ErrInvalidGender
	}
}

func toStringArray(tags utils.Tags) pq.StringArray {
	out := make(pq.StringArray, 0, len(tags))
	for _, t := range tags {
		out = append(out, t)
	}
	return out
}
