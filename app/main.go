package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/randumduck/upsc-daily-news-digest/app/cfg"
	"github.com/randumduck/upsc-daily-news-digest/app/config"
	"github.com/randumduck/upsc-daily-news-digest/app/database"
	"github.com/randumduck/upsc-daily-news-digest/app/digest"
	"github.com/randumduck/upsc-daily-news-digest/app/feed"
	"github.com/randumduck/upsc-daily-news-digest/app/notify"
	"github.com/randumduck/upsc-daily-news-digest/app/parser"
	"github.com/randumduck/upsc-daily-news-digest/app/publish"
	"github.com/randumduck/upsc-daily-news-digest/app/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// A .env file is optional; environment variables and flags win
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	log.Println("Starting daily news digest generation...")

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open article archive: %v", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Printf("Article archive ready (schema version %d, dirty: %t)", version, dirty)

	sources, err := config.NewLoader(appCfg.FeedsFile).Load()
	if err != nil {
		log.Fatalf("Failed to load feed sources: %v", err)
	}

	repo := database.NewArticleRepository(db)
	feedParser := parser.NewParser(appCfg.GetFetchTimeout(), appCfg.UserAgent)
	processor := feed.NewProcessor(feedParser, repo)

	ctx := context.Background()
	processor.Run(ctx, sources)

	if total, err := repo.GetArticleCount(); err == nil {
		log.Printf("Archive now holds %d articles", total)
	}

	now := time.Now()
	assembler := digest.NewAssembler(repo, appCfg.ArticlesPerFeed)
	html, err := assembler.BuildDaily(now)
	if err != nil {
		log.Fatalf("Failed to assemble digest: %v", err)
	}

	// Publication failure is recoverable: notifications still carry the
	// in-memory document
	publisher := publish.NewPublisher(appCfg.OutputDir)
	if err := publisher.WriteDigest(html, now); err != nil {
		log.Printf("Warning: failed to publish digest: %v", err)
	}

	subject := fmt.Sprintf("Daily News Digest - %s", digest.FormatDate(now))
	if err := notify.NewEmailNotifier(appCfg).Send(subject, html); err != nil {
		log.Printf("Warning: failed to send email: %v", err)
	}

	message := fmt.Sprintf("Daily digest is ready for %s! Check your email or the archive page.", digest.FormatDate(now))
	if err := notify.NewWebhookNotifier(appCfg).Send(ctx, message); err != nil {
		log.Printf("Warning: failed to send webhook notification: %v", err)
	}

	log.Println("News digest generation complete")

	if appCfg.Serve {
		log.Printf("Serving digest archive on port %s", appCfg.Port)
		if err := server.New(appCfg.OutputDir).Run(":" + appCfg.Port); err != nil {
			log.Fatalf("Preview server error: %v", err)
		}
	}
}
