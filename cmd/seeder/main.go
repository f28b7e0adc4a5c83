package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"santara/internal/infra"
	"santara/internal/repositories"
	"santara/internal/seed"
	"santara/internal/services"
	"santara/pkg/utils"
)

// Seeder is a run-to-completion batch job. It expects exclusive access to
// the store: no API traffic during a run.
func main() {
	cmd := &cli.Command{
		Name:  "seeder",
		Usage: "Seed the Santara content database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db := openDB()
					if err := infra.Migrate(db); err != nil {
						return err
					}
					log.Println("migration complete")
					return nil
				},
			},
			{
				Name:  "tenun",
				Usage: "Replace-all seed of provinces and weaving items from a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "seed file (overrides the candidate paths)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					paths := seed.TenunSeedPaths
					if f := c.String("file"); f != "" {
						paths = []string{f}
					}

					records, err := seed.LoadCanonical(paths)
					if err != nil {
						return err
					}

					stats, err := newSeedService(openDB()).ReplaceTenun(ctx, records)
					if err != nil {
						return err
					}
					log.Printf("tenun seed done: %d provinces, %d inserted, %d skipped, %d provinces pruned",
						stats.Provinces, stats.Inserted, stats.Skipped, stats.Pruned)
					return nil
				},
			},
			{
				Name:  "articles",
				Usage: "Merge-upsert articles from a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "seed file (overrides the candidate paths)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					paths := seed.ArticleSeedPaths
					if f := c.String("file"); f != "" {
						paths = []string{f}
					}

					rows, err := seed.LoadArticleRows(paths)
					if err != nil {
						return err
					}

					applied, err := newSeedService(openDB()).MergeArticles(ctx, rows)
					if err != nil {
						return err
					}
					log.Printf("article seed done: %d upserted", applied)
					return nil
				},
			},
			{
				Name:  "inspo",
				Usage: "Merge-upsert outfit inspirations from an image directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Usage: "image directory (default: <public>/images/inspo)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg := utils.LoadConfig()
					dir := c.String("dir")
					if dir == "" {
						dir = filepath.Join(cfg.PublicDir, "images", "inspo")
					}

					files, err := seed.ScanInspoDir(dir)
					if err != nil {
						return err
					}

					applied, err := newSeedService(openDB()).MergeInspo(ctx, files)
					if err != nil {
						return err
					}
					log.Printf("inspo seed done: %d upserted", applied)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB() *gorm.DB {
	cfg := utils.LoadConfig()
	return infra.InitPostgresql(cfg.PostgresURL)
}

func newSeedService(db *gorm.DB) *services.SeedService {
	return services.NewSeedService(
		repositories.NewProvinceRepository(db),
		repositories.NewTenunRepository(db),
		repositories.NewArticleRepository(db),
		repositories.NewInspoRepository(db),
	)
}
