package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/spf13/cobra"
)

func upskillCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:       "upskill <paths|projects|course>",
		Short:     "Suggest career paths, portfolio projects or a mini course",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"paths", "projects", "course"},
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "paths":
				paths, err := uc.CareerPaths(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(out, paths)
				}
				printCareerPaths(out, paths)
			case "projects":
				projects, err := uc.ProjectSuggestions(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(out, projects)
				}
				printProjects(out, projects)
			case "course":
				course, err := uc.MiniCourse(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(out, course)
				}
				printCourse(out, course)
			default:
				return fmt.Errorf("unknown upskill topic %q (want paths, projects or course)", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func downloadCmd(app *App) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Typeset a text file (an improved CV or an email) as PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readText(in)
			if err != nil {
				return err
			}
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			pdf, err := uc.DownloadPDF(cmd.Context(), content)
			if err != nil {
				return err
			}

			dest := out
			if dest == "" {
				dest = filepath.Join(app.cfg.OutputDir, usecase.DownloadFilename)
			}
			if err := os.WriteFile(dest, pdf, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", dest, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "text file to typeset")
	cmd.Flags().StringVar(&out, "out", "", "where to write the PDF (default <output_dir>/"+usecase.DownloadFilename+")")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
