// Package main provides the sitectl binary, an admin companion for the site
// API: database initialization, starter content seeding, and inquiry
// inspection without going through the HTTP surface.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	dbfs "github.com/logicton/siteapi/db"
	"github.com/logicton/siteapi/internal/config"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/internal/db"
	"github.com/logicton/siteapi/internal/repository/fsjson"
	"github.com/logicton/siteapi/pkg/models"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sitectl",
		Short: "Admin tooling for the site content API",
		Long: `Sitectl manages the site API's storage out of band:

- init:   create the SQLite schema and load starter portfolio rows
- seed:   write starter content JSON documents to the content root
- stats:  print contact inquiry counts per status
- export: dump all contact inquiries as JSON to stdout
- backup: copy the SQLite database aside`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(initCmd(&configPath))
	cmd.AddCommand(seedCmd(&configPath))
	cmd.AddCommand(statsCmd(&configPath))
	cmd.AddCommand(exportCmd(&configPath))
	cmd.AddCommand(backupCmd(&configPath))

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func initCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema and load starter portfolio rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			conn, err := db.New(ctx, cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer conn.Close()

			if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := db.SeedPortfolio(ctx, conn, dbfs.SeedFiles); err != nil {
				return fmt.Errorf("seed portfolio: %w", err)
			}

			fmt.Printf("Database initialized at %s\n", cfg.DatabasePath)
			return nil
		},
	}
}

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write starter content documents to the content root",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			store, err := content.NewStore(cfg.ContentDir, logger)
			if err != nil {
				return fmt.Errorf("open content root: %w", err)
			}

			for rel, doc := range starterContent() {
				if err := store.WriteDoc(rel, doc); err != nil {
					return fmt.Errorf("write %s: %w", rel, err)
				}
				fmt.Printf("Wrote %s\n", rel)
			}
			return nil
		},
	}
}

func statsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print contact inquiry counts per status",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openFileRepo(*configPath)
			if err != nil {
				return err
			}

			stats, err := repo.InquiryStats(context.Background())
			if err != nil {
				return fmt.Errorf("read inquiries: %w", err)
			}

			fmt.Printf("total:     %d\n", stats.Total)
			fmt.Printf("new:       %d\n", stats.New)
			fmt.Printf("read:      %d\n", stats.Read)
			fmt.Printf("responded: %d\n", stats.Responded)
			return nil
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump all contact inquiries as JSON to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openFileRepo(*configPath)
			if err != nil {
				return err
			}

			inquiries, err := repo.ListInquiries(context.Background())
			if err != nil {
				return fmt.Errorf("read inquiries: %w", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(inquiries)
		},
	}
}

func backupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the SQLite database to <database_path>.bak",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			src, err := os.Open(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer src.Close()

			dstPath := cfg.DatabasePath + ".bak"
			dst, err := os.Create(dstPath)
			if err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
			defer dst.Close()

			if _, err := io.Copy(dst, src); err != nil {
				return fmt.Errorf("copy database: %w", err)
			}

			fmt.Printf("Database backed up to %s\n", dstPath)
			return nil
		},
	}
}

func openFileRepo(configPath string) (*fsjson.Repo, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator, err := content.NewValidator(context.Background())
	if err != nil {
		return nil, fmt.Errorf("compile schemas: %w", err)
	}
	store, err := content.NewStore(cfg.ContentDir, logger)
	if err != nil {
		return nil, fmt.Errorf("open content root: %w", err)
	}

	return fsjson.New(store, validator, logger), nil
}

// starterContent maps content-root relative paths to their starter documents.
// Existing files are overwritten; seed is meant for fresh installs.
func starterContent() map[string]any {
	return map[string]any{
		"company/info.json": models.CompanyInfo{
			ID:   "company-info",
			Name: "Logicton",
			Description: models.LocalizedText{
				Th: "บริษัทพัฒนาซอฟต์แวร์และเว็บแอปพลิเคชัน",
				En: "A software and web application development company",
			},
			Mission: models.LocalizedText{
				Th: "ส่งมอบซอฟต์แวร์คุณภาพสูงที่ตอบโจทย์ธุรกิจ",
				En: "Deliver high-quality software that serves real business needs",
			},
			Vision: models.LocalizedText{
				Th: "เป็นพันธมิตรด้านเทคโนโลยีที่ลูกค้าไว้วางใจ",
				En: "Be the technology partner our clients trust",
			},
			History: models.LocalizedText{
				Th: "ก่อตั้งโดยทีมวิศวกรซอฟต์แวร์",
				En: "Founded by a team of software engineers",
			},
			FoundedYear: 2020,
			Location:    "Bangkok, Thailand",
			UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
		},
		"company/team.json": map[string][]models.TeamMember{
			"members": {},
		},
		"services/services.json": map[string][]models.Service{
			"services": {
				{
					ID: "service-web-development",
					Title: models.LocalizedText{
						Th: "พัฒนาเว็บไซต์",
						En: "Web Development",
					},
					Description: models.LocalizedText{
						Th: "ออกแบบและพัฒนาเว็บไซต์และเว็บแอปพลิเคชัน",
						En: "Design and build websites and web applications",
					},
					Features: models.LocalizedList{
						Th: []string{"เว็บไซต์องค์กร", "ระบบหลังบ้าน"},
						En: []string{"Corporate websites", "Admin back offices"},
					},
					Technologies: []string{"Go", "TypeScript", "PostgreSQL"},
					Icon:         "🌐",
					Category:     models.CategoryWeb,
					Order:        1,
					IsActive:     true,
				},
			},
		},
		"settings/site-config.json": models.SiteConfig{
			SiteName: models.LocalizedText{
				Th: "โลจิกตัน",
				En: "Logicton",
			},
			SiteDescription: models.LocalizedText{
				Th: "บริการพัฒนาซอฟต์แวร์ครบวงจร",
				En: "Full-service software development",
			},
			ContactInfo: models.ContactInfo{
				Email: "contact@logicton.com",
				Phone: "+66 2 000 0000",
				Address: models.LocalizedText{
					Th: "กรุงเทพมหานคร ประเทศไทย",
					En: "Bangkok, Thailand",
				},
			},
			SEO: models.SEO{
				Keywords: models.LocalizedList{
					Th: []string{"พัฒนาเว็บไซต์", "พัฒนาซอฟต์แวร์"},
					En: []string{"web development", "software development"},
				},
			},
		},
		"contact-inquiries/inquiries.json": []models.ContactInquiry{},
	}
}
