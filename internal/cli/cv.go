package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/spf13/cobra"
)

func uploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a CV (pdf, docx or txt, up to 16MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			status, err := uc.UploadCV(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "CV uploaded successfully!")
			printStatus(out, status)
			return nil
		},
	}
}

func statusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the backend has your CV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			status, err := uc.CVStatus(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

var analysisTypes = []string{"review", "ats", "rewrite", "job_match"}

func analyzeCmd(app *App) *cobra.Command {
	var (
		jdFile  string
		asJSON  bool
		copyOut bool
	)
	cmd := &cobra.Command{
		Use:       "analyze <review|ats|rewrite|job_match>",
		Short:     "Review, scan, rewrite or match your CV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: analysisTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if copyOut && kind != "rewrite" {
				return fmt.Errorf("--copy only applies to rewrite")
			}
			jd, err := readText(jdFile)
			if err != nil {
				return err
			}
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			var result any
			var show func()
			switch kind {
			case "review":
				r, err := uc.Review(ctx, jd)
				if err != nil {
					return err
				}
				result, show = r, func() { printReview(out, r) }
			case "ats":
				if strings.TrimSpace(jd) == "" {
					r, err := uc.ScanATS(ctx)
					if err != nil {
						return err
					}
					result, show = r, func() { printATS(out, r) }
					break
				}
				r, err := uc.ScanATSWithKeywords(ctx, jd)
				if err != nil {
					return err
				}
				result, show = r, func() { printATSKeywords(out, r) }
			case "rewrite":
				r, err := uc.Rewrite(ctx)
				if err != nil {
					return err
				}
				if copyOut {
					if err := app.copy(r.ImprovedCV); err != nil {
						return err
					}
					fmt.Fprintln(cmd.ErrOrStderr(), "Improved CV copied to clipboard.")
				}
				result, show = r, func() { printRewrite(out, r) }
			case "job_match":
				r, err := uc.MatchJob(ctx, jd)
				if err != nil {
					return err
				}
				result, show = r, func() { printMatch(out, r) }
			default:
				return fmt.Errorf("unknown analysis type %q (want one of %s)", kind, strings.Join(analysisTypes, ", "))
			}

			if asJSON {
				return printJSON(out, result)
			}
			show()
			return nil
		},
	}
	cmd.Flags().StringVar(&jdFile, "jd", "", "file holding the job description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the improved CV to the clipboard (rewrite only)")
	return cmd
}

func emailCmd(app *App) *cobra.Command {
	var (
		emailType    string
		emailContext string
		copyOut      bool
	)
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Draft an outreach email from your CV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			email, err := uc.GenerateEmail(cmd.Context(), emailType, emailContext)
			if err != nil {
				return err
			}
			if copyOut {
				if err := app.copy(email.Document()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Email copied to clipboard.")
			}
			printEmail(cmd.OutOrStdout(), email)
			return nil
		},
	}
	cmd.Flags().StringVar(&emailType, "type", usecase.EmailTypes[0], "email type: "+strings.Join(usecase.EmailTypes, ", "))
	cmd.Flags().StringVar(&emailContext, "context", "", "company, role or situation to write about")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the email to the clipboard")
	return cmd
}
