package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"santara/internal/models/db_models"
	"santara/internal/models/request_models"
	"santara/pkg/utils"
)

func TestClampRandomLimit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want int
	}{
		{in: 0, want: 6},
		{in: -3, want: 6},
		{in: 1, want: 1},
		{in: 7, want: 7},
		{in: 50, want: 50},
		{in: 100, want: 50},
	}

	for _, tc := range cases {
		if got := ClampRandomLimit(tc.in); got != tc.want {
			t.Fatalf("ClampRandomLimit(%d)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestRandomInspo_FewerRowsThanLimitReturnsAll(t *testing.T) {
	t.Parallel()

	repo := &fakeInspoRepo{}
	svc := NewInspoService(repo)
	for i := 0; i < 3; i++ {
		repo.rows = append(repo.rows, db_models.OutfitInspo{
			Slug:  fmt.Sprintf("inspo-%d", i),
			Title: fmt.Sprintf("Inspo %d", i),
		})
	}

	got, err := svc.RandomInspo(context.Background(), 10)
	if err != nil {
		t.Fatalf("RandomInspo: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, want all 3 rows", len(got))
	}
	seen := map[string]bool{}
	for _, r := range got {
		if seen[r.Slug] {
			t.Fatalf("duplicate slug %q in window", r.Slug)
		}
		seen[r.Slug] = true
	}
}

func TestRandomInspo_EmptyTableReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	svc := NewInspoService(&fakeInspoRepo{})
	got, err := svc.RandomInspo(context.Background(), 0)
	if err != nil {
		t.Fatalf("RandomInspo: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}

func TestCreateInspo_InvalidGenderRejected(t *testing.T) {
	t.Parallel()

	svc := NewInspoService(&fakeInspoRepo{})
	_, err := svc.CreateInspo(context.Background(), request_models.InspoCreateRequest{
		Title:    "Kebaya Modern",
		ImageURL: "/public/images/inspo/kebaya.jpg",
		Gender:   "OTHER",
	})
	if !errors.Is(err, utils.ErrInvalidGender) {
		t.Fatalf("err=%v, want ErrInvalidGender", err)
	}
}

func TestCreateInspo_GenderNormalizedToUpper(t *testing.T) {
	t.Parallel()

	svc := NewInspoService(&fakeInspoRepo{})
	got, err := svc.CreateInspo(context.Background(), request_models.InspoCreateRequest{
		Title:    "Kebaya Modern",
		ImageURL: "/public/images/inspo/kebaya.jpg",
		Gender:   " women ",
	})
	if err != nil {
		t.Fatalf("CreateInspo: %v", err)
	}
	if got.Gender == nil || *got.Gender != db_models.GenderWomen {
		t.Fatalf("gender=%v, want WOMEN", got.Gender)
	}
	if got.Slug != "kebaya-modern" {
		t.Fatalf("slug=%q", got.Slug)
	}
}

func TestUpdateInspo_PartialFieldsOnly(t *testing.T) {
	t.Parallel()

	repo := &fakeInspoRepo{}
	svc := NewInspoService(repo)

	created, err := svc.CreateInspo(context.Background(), request_models.InspoCreateRequest{
		Title:    "Sarung Tenun",
		ImageURL: "/public/images/inspo/sarung.jpg",
		Credit:   "Studio A",
		Gender:   "MEN",
	})
	if err != nil {
		t.Fatalf("CreateInspo: %v", err)
	}

	newTitle := "Sarung Tenun Ikat"
	clear := ""
	got, err := svc.UpdateInspo(context.Background(), created.Slug, request_models.InspoUpdateRequest{
		Title:  &newTitle,
		Credit: &clear,
	})
	if err != nil {
		t.Fatalf("UpdateInspo: %v", err)
	}
	if got.Title != newTitle {
		t.Fatalf("title=%q", got.Title)
	}
	if got.Credit != nil {
		t.Fatalf("empty string should clear credit, got %q", *got.Credit)
	}
	// Untouched fields survive.
	if got.ImageURL != "/public/images/inspo/sarung.jpg" {
		t.Fatalf("imageUrl changed: %q", got.ImageURL)
	}
	if got.Gender == nil || *got.Gender != db_models.GenderMen {
		t.Fatalf("gender changed: %v", got.Gender)
	}
	// Slug is stable across title edits.
	if got.Slug != "sarung-tenun" {
		t.Fatalf("slug=%q", got.Slug)
	}
}

func TestUpdateInspo_InvalidGenderRejected(t *testing.T) {
	t.Parallel()

	repo := &fakeInspoRepo{rows: []db_models.OutfitInspo{{Slug: "a", Title: "A"}}}
	svc := NewInspoService(repo)

	bad := "kids"
	if _, err := svc.UpdateInspo(context.Background(), "a", request_models.InspoUpdateRequest{Gender: &bad}); !errors.Is(err, utils.ErrInvalidGender) {
		t.Fatalf("err=%v, want ErrInvalidGender", err)
	}
}

func TestDeleteInspo_MissingSlugIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewInspoService(&fakeInspoRepo{})
	if err := svc.DeleteInspo(context.Background(), "ghost"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestDeleteInspo_RemovesRow(t *testing.T) {
	t.Parallel()

	repo := &fakeInspoRepo{rows: []db_models.OutfitInspo{{Slug: "a", Title: "A"}, {Slug: "b", Title: "B"}}}
	svc := NewInspoService(repo)

	if err := svc.DeleteInspo(context.Background(), "a"); err != nil {
		t.Fatalf("DeleteInspo: %v", err)
	}
	if len(repo.rows) != 1 || repo.rows[0].Slug != "b" {
		t.Fatalf("rows=%+v", repo.rows)
	}
}
