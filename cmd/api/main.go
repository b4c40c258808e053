package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/faq_board/configs"
	"github.com/anjiri1684/faq_board/database"
	"github.com/anjiri1684/faq_board/handlers"
	"github.com/anjiri1684/faq_board/jobs"
	"github.com/anjiri1684/faq_board/middleware"
	"github.com/anjiri1684/faq_board/notifications"
	"github.com/anjiri1684/faq_board/routes"
	"github.com/anjiri1684/faq_board/services"
	"github.com/anjiri1684/faq_board/websocket"
)

func main() {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("🔥 Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("🔥 Failed to open question store: %v", err)
	}
	defer store.Close()

	var mailer notifications.Mailer
	if cfg.EmailConfigured() {
		mailer = notifications.NewBrevoService(cfg.BrevoAPIKey, cfg.EmailSender, cfg.EmailSenderName)
		log.Println("✅ Email service initialized successfully.")
	} else {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
	}
	notifier := notifications.NewNotifier(mailer, cfg.AdminEmail, cfg.AppURL)

	hub := websocket.NewHub(64)
	go hub.Run(ctx)

	svc := services.NewQuestionService(store, notifier, services.WithPublisher(hub))

	digest := jobs.NewPendingDigest(svc, notifier)
	c, err := jobs.Schedule(cfg.PendingDigestSchedule, digest)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if c != nil {
		c.Start()
		defer c.Stop()
		log.Printf("✅ Pending digest scheduled (%s)", cfg.PendingDigestSchedule)
	}

	gate, err := middleware.NewAdminGate(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}

	app := routes.NewApp(cfg, routes.Deps{
		Questions: handlers.NewQuestionHandler(svc),
		Admin:     handlers.NewAdminHandler(svc, gate),
		Board:     handlers.NewBoardHandler(hub),
		Gate:      gate,
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("🚀 FAQ Server running on port %s", cfg.Port)
	log.Printf("📖 Public FAQ: %s", cfg.AppURL)
	log.Printf("🔐 Admin panel: %s/admin.html", cfg.AppURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
