package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/repositories"
	"santara/internal/seed"
	"santara/pkg/utils"
)

// SeedService applies seed data to the store. Two policies, kept apart on
// purpose: tenun seeding replaces the whole table (destructive, prunes
// stale provinces), article and inspo seeding merge by slug and never
// delete. Seed runs assume exclusive access to the store; nothing here is
// transactionally guarded.
type SeedService struct {
	provinceRepository repositories.ProvinceRepository
	tenunRepository    repositories.TenunRepository
	articleRepository  repositories.ArticleRepository
	inspoRepository    repositories.InspoRepository
}

func NewSeedService(
	provinceRepository repositories.ProvinceRepository,
	tenunRepository repositories.TenunRepository,
	articleRepository repositories.ArticleRepository,
	inspoRepository repositories.InspoRepository,
) *SeedService {
	return &SeedService{
		provinceRepository: provinceRepository,
		tenunRepository:    tenunRepository,
		articleRepository:  articleRepository,
		inspoRepository:    inspoRepository,
	}
}

// ReplaceStats reports what a replace-all run did.
type ReplaceStats struct {
	Provinces int
	Inserted  int
	Skipped   int
	Pruned    int64
}

// ReplaceTenun is the replace-all pipeline: empty the tenun table, prune
// provinces missing from the canonical set, ensure the remaining ones and
// recreate every row. A duplicate-key error skips that row only; any
// other error, or a run that lands zero rows, aborts.
func (s *SeedService) ReplaceTenun(ctx context.Context, records []seed.Canonical) (ReplaceStats, error) {
	var stats ReplaceStats
	if len(records) == 0 {
		return stats, seed.ErrNoUsableRows
	}

	deleted, err := s.tenunRepository.DeleteAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("delete tenun rows: %w", err)
	}
	log.Printf("seed: cleared %d tenun rows", deleted)

	names := distinctProvinceNames(records)

	stats.Pruned, err = s.provinceRepository.PruneExcept(ctx, names)
	if err != nil {
		return stats, fmt.Errorf("prune provinces: %w", err)
	}

	provinceIDs := make(map[string]db_models.Province, len(names))
	for _, name := range names {
		province, err := s.provinceRepository.EnsureByName(ctx, name)
		if err != nil {
			return stats, fmt.Errorf("ensure province %q: %w", name, err)
		}
		provinceIDs[strings.ToLower(name)] = *province
	}
	stats.Provinces = len(provinceIDs)

	for _, record := range records {
		province := provinceIDs[strings.ToLower(strings.TrimSpace(record.Province))]
		item := &db_models.Tenun{
			JenisTenun:  record.JenisTenun,
			Description: record.Description,
			ProvinceID:  province.ID,
		}
		if err := s.tenunRepository.Create(ctx, item); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Dedup should make this unreachable; skip the row, keep the run.
				stats.Skipped++
				log.Printf("seed: skipped duplicate (%s, %s)", record.Province, record.JenisTenun)
				continue
			}
			return stats, fmt.Errorf("create tenun (%s, %s): %w", record.Province, record.JenisTenun, err)
		}
		stats.Inserted++
	}

	if stats.Inserted == 0 {
		return stats, seed.ErrNoUsableRows
	}
	return stats, nil
}

// MergeArticles upserts article seed rows by the slug of their title.
// Rows without a title are skipped. Nothing is deleted.
func (s *SeedService) MergeArticles(ctx context.Context, rows []seed.ArticleRow) (int, error) {
	applied := 0
	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}

		slug := utils.Slugify(title)
		if slug == "" {
			slug = emptySlugFallback
		}

		article, err := s.articleRepository.GetBySlug(ctx, slug)
		if err != nil {
			return applied, fmt.Errorf("lookup article %q: %w", slug, err)
		}

		tags := toStringArray(utils.NormalizeTags(row.Tags))
		imageURL := row.ResolvedImageURL()
		publishedAt := parsePublishedAt(row.PublishedAt)

		existing := article != nil
		if !existing {
			article = &db_models.Article{Slug: slug}
		}
		article.Title = title
		article.Summary = optional(row.Summary)
		article.Content = optional(row.Content)
		article.ImageURL = optional(imageURL)
		article.Author = optional(row.Author)
		article.Tags = tags
		article.URL = optional(row.URL)
		article.PublishedAt = publishedAt

		if existing {
			err = s.articleRepository.Save(ctx, article)
		} else {
			err = s.articleRepository.Create(ctx, article)
		}
		if err != nil {
			return applied, fmt.Errorf("upsert article %q: %w", slug, err)
		}

		log.Printf("seed: upsert article %s", slug)
		applied++
	}
	return applied, nil
}

// MergeInspo upserts image-derived rows by slug, refreshing title and
// image URL. Nothing is deleted.
func (s *SeedService) MergeInspo(ctx context.Context, files []seed.InspoFile) (int, error) {
	applied := 0
	for _, f := range files {
		inspo, err := s.inspoRepository.GetBySlug(ctx, f.Slug)
		if err != nil {
			return applied, fmt.Errorf("lookup inspo %q: %w", f.Slug, err)
		}

		if inspo == nil {
			inspo = &db_models.OutfitInspo{Slug: f.Slug, Title: f.Title, ImageURL: f.ImageURL}
			err = s.inspoRepository.Create(ctx, inspo)
		} else {
			inspo.Title = f.Title
			inspo.ImageURL = f.ImageURL
			err = s.inspoRepository.Save(ctx, inspo)
		}
		if err != nil {
			return applied, fmt.Errorf("upsert inspo %q: %w", f.Slug, err)
		}
		applied++
	}
	return applied, nil
}

func distinctProvinceNames(records []seed.Canonical) []string {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		name := strings.TrimSpace(r.Province)
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

func parsePublishedAt(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
