package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/repositories"
)

// In-memory repository fakes mirroring the store's uniqueness behavior:
// duplicate keys come back as gorm.ErrDuplicatedKey, exactly as the
// postgres layer reports them with TranslateError on.

type fakeProvinceRepo struct {
	byName map[string]*db_models.Province
}

func newFakeProvinceRepo(names ...string) *fakeProvinceRepo {
	f := &fakeProvinceRepo{byName: map[string]*db_models.Province{}}
	for _, n := range names {
		f.byName[n] = &db_models.Province{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: n}
	}
	return f
}

func (f *fakeProvinceRepo) ListAll(ctx context.Context) ([]db_models.Province, error) {
	names := make([]string, 0, len(f.byName))
	for n := range f.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]db_models.Province, 0, len(names))
	for _, n := range names {
		out = append(out, *f.byName[n])
	}
	return out, nil
}

func (f *fakeProvinceRepo) GetByName(ctx context.Context, name string) (*db_models.Province, error) {
	if p, ok := f.byName[name]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProvinceRepo) Create(ctx context.Context, province *db_models.Province) error {
	if _, ok := f.byName[province.Name]; ok {
		return gorm.ErrDuplicatedKey
	}
	province.ID = uuid.New()
	cp := *province
	f.byName[province.Name] = &cp
	return nil
}

func (f *fakeProvinceRepo) EnsureByName(ctx context.Context, name string) (*db_models.Province, error) {
	if p, ok := f.byName[name]; ok {
		cp := *p
		return &cp, nil
	}
	p := &db_models.Province{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: name}
	f.byName[name] = p
	cp := *p
	return &cp, nil
}

func (f *fakeProvinceRepo) PruneExcept(ctx context.Context, names []string) (int64, error) {
	keep := map[string]struct{}{}
	for _, n := range names {
		keep[n] = struct{}{}
	}
	var pruned int64
	for n := range f.byName {
		if _, ok := keep[n]; !ok {
			delete(f.byName, n)
			pruned++
		}
	}
	return pruned, nil
}

type fakeTenunRepo struct {
	rows    []db_models.Tenun
	failOn  string // JenisTenun value that triggers a non-duplicate error
	failErr error
}

func (f *fakeTenunRepo) List(ctx context.Context, provinceName string) ([]db_models.Tenun, error) {
	out := make([]db_models.Tenun, 0, len(f.rows))
	for _, r := range f.rows {
		if provinceName != "" && (r.Province == nil || r.Province.Name != provinceName) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeTenunRepo) Create(ctx context.Context, tenun *db_models.Tenun) error {
	if f.failOn != "" && tenun.JenisTenun == f.failOn {
		return f.failErr
	}
	for _, r := range f.rows {
		if r.ProvinceID == tenun.ProvinceID && r.JenisTenun == tenun.JenisTenun {
			return gorm.ErrDuplicatedKey
		}
	}
	tenun.ID = uuid.New()
	f.rows = append(f.rows, *tenun)
	return nil
}

func (f *fakeTenunRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(f.rows))
	f.rows = nil
	return n, nil
}

func dummyTenun(name string) db_models.Tenun {
	return db_models.Tenun{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		JenisTenun: name,
		ProvinceID: uuid.New(),
	}
}

type fakeArticleRepo struct {
	bySlug map[string]*db_models.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{bySlug: map[string]*db_models.Article{}}
}

func (f *fakeArticleRepo) List(ctx context.Context, q repositories.ArticleQuery) ([]db_models.Article, error) {
	out := make([]db_models.Article, 0, len(f.bySlug))
	for _, a := range f.bySlug {
		if q.Q != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(q.Q)) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArticleRepo) GetBySlug(ctx context.Context, slug string) (*db_models.Article, error) {
	if a, ok := f.bySlug[slug]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, ok := f.bySlug[slug]
	return ok, nil
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *db_models.Article) error {
	if _, ok := f.bySlug[article.Slug]; ok {
		return gorm.ErrDuplicatedKey
	}
	article.ID = uuid.New()
	cp := *article
	f.bySlug[article.Slug] = &cp
	return nil
}

func (f *fakeArticleRepo) Save(ctx context.Context, article *db_models.Article) error {
	cp := *article
	f.bySlug[article.Slug] = &cp
	return nil
}

type fakeInspoRepo struct {
	rows []db_models.OutfitInspo
}

func (f *fakeInspoRepo) index(slug string) int {
	for i, r := range f.rows {
		if r.Slug == slug {
			return i
		}
	}
	return -1
}

func (f *fakeInspoRepo) List(ctx context.Context, q repositories.InspoQuery) ([]db_models.OutfitInspo, error) {
	out := make([]db_models.OutfitInspo, 0, len(f.rows))
	for _, r := range f.rows {
		if q.Gender != "" && (r.Gender == nil || *r.Gender != q.Gender) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeInspoRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeInspoRepo) Window(ctx context.Context, limit, offset int) ([]db_models.OutfitInspo, error) {
	if offset >= len(f.rows) {
		return []db_models.OutfitInspo{}, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return append([]db_models.OutfitInspo{}, f.rows[offset:end]...), nil
}

func (f *fakeInspoRepo) GetBySlug(ctx context.Context, slug string) (*db_models.OutfitInspo, error) {
	if i := f.index(slug); i >= 0 {
		cp := f.rows[i]
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeInspoRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.index(slug) >= 0, nil
}

func (f *fakeInspoRepo) Create(ctx context.Context, inspo *db_models.OutfitInspo) error {
	if f.index(inspo.Slug) >= 0 {
		return gorm.ErrDuplicatedKey
	}
	inspo.ID = uuid.New()
	f.rows = append(f.rows, *inspo)
	return nil
}

func (f *fakeInspoRepo) Save(ctx context.Context, inspo *db_models.OutfitInspo) error {
	if i := f.index(inspo.Slug); i >= 0 {
		f.rows[i] = *inspo
		return nil
	}
	f.rows = append(f.rows, *inspo)
	return nil
}

func (f *fakeInspoRepo) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	if i := f.index(slug); i >= 0 {
		f.rows = append(f.rows[:i], f.rows[i+1:]...)
		return 1, nil
	}
	return 0, nil
}
