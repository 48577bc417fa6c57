// Package cli is the careercraft terminal client. It drives the same
// usecases as the web front against the backend named in the YAML config.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := NewApp()
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Warning: could not save backend session: %v", err)
		}
	}()
	return NewRootCommand(app).ExecuteContext(ctx)
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "careercraft",
		Short: "CareerCraft Pro from the terminal",
		Long: `careercraft uploads your CV to a CareerCraft backend and runs its
reviews, ATS scans, rewrites, job matching, email drafting, mock
interviews and upskilling plans from the shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLIConfig(app.cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", app.cfgPath, err)
			}
			app.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.cfgPath, "config", app.cfgPath, "config file path")

	root.AddCommand(
		uploadCmd(app),
		statusCmd(app),
		analyzeCmd(app),
		emailCmd(app),
		interviewCmd(app),
		questionsCmd(app),
		templateCmd(app),
		upskillCmd(app),
		downloadCmd(app),
		themeCmd(app),
	)
	return root
}
