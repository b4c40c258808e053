package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	config "github.com/anjiri1684/faq_board/configs"
	"github.com/anjiri1684/faq_board/database"
	"github.com/anjiri1684/faq_board/export"
	"github.com/anjiri1684/faq_board/jobs"
	"github.com/anjiri1684/faq_board/models"
	"github.com/anjiri1684/faq_board/notifications"
	"github.com/anjiri1684/faq_board/services"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func NewContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func loadStoreConfig() (config.Config, error) {
	config.LoadEnv()
	cfg := config.Parse()
	if err := cfg.ValidateStore(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the questions table",
		Long:  "Run the schema migration for the postgres and sqlite backends.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStoreConfig()
			if err != nil {
				return err
			}
			if cfg.StoreBackend != config.BackendPostgres && cfg.StoreBackend != config.BackendSQLite {
				fmt.Printf("%s %s backend has no schema to migrate\n", yellow("!"), cfg.StoreBackend)
				return nil
			}

			db, err := database.ConnectDB(cfg.StoreBackend, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Printf("%s Migration complete\n", green("✓"))
			return nil
		},
	}
}

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every question as JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			if format != "json" && format != "csv" {
				return fmt.Errorf("unsupported format %q (want json or csv)", format)
			}

			cfg, err := loadStoreConfig()
			if err != nil {
				return err
			}
			ctx, cancel := NewContext()
			defer cancel()

			store, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			questions, err := services.NewQuestionService(store, nil).FullList(ctx)
			if err != nil {
				return fmt.Errorf("failed to list questions: %w", err)
			}

			now := time.Now()
			if output == "" {
				output = export.Filename(format, now)
			}

			var w io.Writer = os.Stdout
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := WriteExport(w, format, questions, now); err != nil {
				return err
			}
			if output != "-" {
				fmt.Printf("%s Exported %d question(s) to %s\n", green("✓"), len(questions), output)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "json", "export format: json or csv")
	cmd.Flags().StringP("output", "o", "", "output file, - for stdout (default faq-export-<date>.<format>)")
	return cmd
}

func DigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Email the admin the list of pending questions now",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStoreConfig()
			if err != nil {
				return err
			}
			if !cfg.EmailConfigured() || cfg.AdminEmail == "" {
				return fmt.Errorf("email is not configured: set BREVO_API_KEY, EMAIL_SENDER, EMAIL_SENDER_NAME and ADMIN_EMAIL")
			}

			ctx, cancel := NewContext()
			defer cancel()

			store, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			mailer := notifications.NewBrevoService(cfg.BrevoAPIKey, cfg.EmailSender, cfg.EmailSenderName)
			notifier := notifications.NewNotifier(mailer, cfg.AdminEmail, cfg.AppURL)
			svc := services.NewQuestionService(store, notifier)

			n, err := jobs.NewPendingDigest(svc, notifier).Run(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Printf("%s No pending questions\n", green("✓"))
				return nil
			}
			fmt.Printf("%s Digest sent for %d pending question(s)\n", green("✓"), n)
			return nil
		},
	}
}

// WriteExport renders questions in the given format to w.
func WriteExport(w io.Writer, format string, questions []models.Question, now time.Time) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export.ToJSON(questions, now))
	case "csv":
		_, err := w.Write(export.ToCSV(questions))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
