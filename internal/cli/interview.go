package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fadilmartias/careercraft/internal/interview"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// endCommand finishes the interview before the last question.
const endCommand = "/end"

func interviewCmd(app *App) *cobra.Command {
	var jdFile string
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Run a mock interview based on your CV",
		Long: `Run a mock interview. Answer each question at the prompt; type /end to
stop early and get the report for the answers given so far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := readText(jdFile)
			if err != nil {
				return err
			}
			backend, err := app.Backend()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			uc := usecase.NewInterviewUsecase(backend, interview.NewMachine())

			fmt.Fprintf(out, "Starting mock interview. Type %s to finish early.\n", endCommand)
			turn, err := uc.Start(ctx, jd)
			if err != nil {
				return err
			}

			progress := newProgress(cmd.ErrOrStderr(), turn.TotalQuestions)
			for turn.Report == nil {
				progress.show(turn)
				fmt.Fprintf(out, "\nInterviewer: %s\n", turn.Question)

				answer, err := readAnswer(app.ask)
				if err != nil {
					return err
				}
				if answer == endCommand {
					turn, err = uc.End(ctx)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", service.UserMessage(err))
					}
					continue
				}

				next, err := uc.Submit(ctx, answer)
				switch {
				case err == nil:
					turn = next
				case next.Report != nil:
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", service.UserMessage(err))
					turn = next
				default:
					fmt.Fprintf(out, "Sorry, something went wrong: %s\nPlease send your answer again.\n", service.UserMessage(err))
				}
			}
			progress.finish()

			printReport(out, *turn.Report, turn.Synthetic)
			return nil
		},
	}
	cmd.Flags().StringVar(&jdFile, "jd", "", "file holding the job description to interview for")
	return cmd
}

// readAnswer prompts until it gets a non-empty answer. An interrupted or
// closed prompt ends the interview.
func readAnswer(ask func(string) (string, error)) (string, error) {
	for {
		answer, err := ask("Your answer")
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
			return endCommand, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
	}
}

type interviewProgress struct {
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, total int) *interviewProgress {
	limit := total
	if limit <= 0 {
		// Unknown length: spinner.
		limit = -1
	}
	return &interviewProgress{bar: progressbar.NewOptions(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
	)}
}

func (p *interviewProgress) show(turn usecase.TurnOutcome) {
	p.bar.Describe(turn.Counter())
	if turn.QuestionNumber > 0 {
		_ = p.bar.Set(turn.QuestionNumber - 1)
	}
}

func (p *interviewProgress) finish() {
	_ = p.bar.Finish()
}

func questionsCmd(app *App) *cobra.Command {
	var (
		jdFile string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List likely interview questions for your CV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := readText(jdFile)
			if err != nil {
				return err
			}
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			questions, err := uc.InterviewQuestions(cmd.Context(), jd)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), questions)
			}
			printQuestions(cmd.OutOrStdout(), questions)
			return nil
		},
	}
	cmd.Flags().StringVar(&jdFile, "jd", "", "file holding the job description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func templateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "template <question>",
		Short: "Get answer templates for an interview question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.CareerCraft()
			if err != nil {
				return err
			}
			templates, err := uc.AnswerTemplate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printTemplates(cmd.OutOrStdout(), templates)
			return nil
		},
	}
}
