package cli

import (
	"context"
	"fmt"

	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/fadilmartias/careercraft/internal/repository"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// configPreferences stores the terminal user's theme in the CLI config file.
// There is a single local user, so the visitor id is ignored.
type configPreferences struct {
	app *App
}

func (p configPreferences) FindByVisitor(_ context.Context, visitorID uuid.UUID) (*model.VisitorPreference, error) {
	if p.app.cfg.Theme == "" {
		return nil, repository.ErrNotFound
	}
	return &model.VisitorPreference{VisitorID: visitorID, Theme: p.app.cfg.Theme}, nil
}

func (p configPreferences) Save(_ context.Context, pref *model.VisitorPreference) error {
	previous := p.app.cfg.Theme
	p.app.cfg.Theme = pref.Theme
	if err := p.app.cfg.Save(p.app.cfgPath); err != nil {
		p.app.cfg.Theme = previous
		return err
	}
	return nil
}

var _ repository.PreferenceRepositoryInterface = configPreferences{}

func themeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the saved theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := usecase.NewThemeUsecase(configPreferences{app})
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				theme, err := themes.Current(ctx, uuid.Nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Theme: %s\n", theme)
				return nil
			}

			var (
				next model.Theme
				err  error
			)
			if args[0] == "toggle" {
				next, err = themes.Toggle(ctx, uuid.Nil)
			} else {
				next, err = themes.Set(ctx, uuid.Nil, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Theme set to %s\n", next)
			return nil
		},
	}
}
