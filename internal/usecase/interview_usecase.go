package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/careercraft/internal/dto"
	"github.com/fadilmartias/careercraft/internal/interview"
	"github.com/fadilmartias/careercraft/internal/service"
)

// TurnOutcome is what the chat view should show after a request.
type TurnOutcome struct {
	Question       string
	QuestionNumber int
	TotalQuestions int
	Report         *dto.InterviewReport
	// Synthetic is set when Report was built locally because the server
	// could not produce one.
	Synthetic bool
}

func (o TurnOutcome) Counter() string {
	return interview.Counter(o.QuestionNumber, o.TotalQuestions)
}

// InterviewUsecase drives the mock-interview exchange. The backend holds the
// questions and progress; the machine only accepts what it says next.
type InterviewUsecase struct {
	backend service.CareerCraftServiceInterface
	machine *interview.Machine
}

func NewInterviewUsecase(backend service.CareerCraftServiceInterface, machine *interview.Machine) *InterviewUsecase {
	return &InterviewUsecase{backend: backend, machine: machine}
}

func (uc *InterviewUsecase) State() interview.State {
	return uc.machine.State()
}

// Start asks for the first question. A previous interview, finished or not,
// is discarded; the backend replaces its session the same way.
func (uc *InterviewUsecase) Start(ctx context.Context, jobDescription string) (TurnOutcome, error) {
	const op = "start interview"
	if uc.machine.State() == interview.StateAwaitingQuestion {
		return TurnOutcome{}, service.NewValidationError(op, "Please wait for the interviewer to respond.")
	}
	uc.machine.Reset()
	if err := uc.machine.Start(); err != nil {
		return TurnOutcome{}, err
	}

	body, err := uc.backend.StartInterview(ctx, strings.TrimSpace(jobDescription))
	if err != nil {
		uc.machine.Fail()
		return TurnOutcome{}, err
	}
	turn := dto.ParseInterviewTurn(body)
	if !turn.Success || turn.Question == "" {
		uc.machine.Fail()
		return TurnOutcome{}, &service.Error{Kind: service.KindShape, Op: op, Message: "The interview could not be started."}
	}
	if err := uc.machine.Apply(turn); err != nil {
		uc.machine.Fail()
		return TurnOutcome{}, err
	}
	return uc.questionOutcome(turn), nil
}

// Submit sends an answer. A transport or server failure rolls the machine
// back to awaiting_answer so the visitor can resend. A report_error means
// the backend already closed the session, so a synthetic report ends it.
func (uc *InterviewUsecase) Submit(ctx context.Context, answer string) (TurnOutcome, error) {
	const op = "submit answer"
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return TurnOutcome{}, service.NewValidationError(op, "Please type an answer.")
	}
	if err := uc.machine.Submit(); err != nil {
		return TurnOutcome{}, service.NewValidationError(op, "There is no open question. Please start a new interview.")
	}

	body, err := uc.backend.SubmitAnswer(ctx, answer)
	if err != nil {
		if service.IsReportError(err) {
			report := interview.SyntheticReport(service.UserMessage(err), interview.FailedAnswer)
			_ = uc.machine.End(report)
			return TurnOutcome{Report: &report, Synthetic: true}, err
		}
		uc.machine.Fail()
		return TurnOutcome{}, err
	}

	turn := dto.ParseInterviewTurn(body)
	if err := uc.machine.Apply(turn); err != nil {
		uc.machine.Fail()
		if errors.Is(err, interview.ErrUnexpectedTurn) {
			return TurnOutcome{}, &service.Error{Kind: service.KindShape, Op: op, Message: err.Error()}
		}
		return TurnOutcome{}, err
	}
	if turn.Report != nil {
		return TurnOutcome{Report: turn.Report}, nil
	}
	return uc.questionOutcome(turn), nil
}

// End asks the backend for the report now. It always yields a report to
// show; on failure the report is synthetic and the error is returned too.
func (uc *InterviewUsecase) End(ctx context.Context) (TurnOutcome, error) {
	body, err := uc.backend.EndInterview(ctx)
	if err == nil {
		if turn := dto.ParseInterviewTurn(body); turn.Report != nil {
			uc.finish(*turn.Report)
			return TurnOutcome{Report: turn.Report}, nil
		}
		err = &service.Error{Kind: service.KindShape, Op: "end interview", Message: "Could not retrieve the interview report."}
	}

	report := interview.SyntheticReport(service.UserMessage(err), interview.FailedReport)
	uc.finish(report)
	return TurnOutcome{Report: &report, Synthetic: true}, err
}

func (uc *InterviewUsecase) finish(report dto.InterviewReport) {
	if uc.machine.State() == interview.StateSetup {
		// Ending from a fresh page: nothing local to close.
		return
	}
	_ = uc.machine.End(report)
}

// questionOutcome reads the counter from the machine, which keeps the last
// numbering when a reply leaves it out.
func (uc *InterviewUsecase) questionOutcome(turn dto.InterviewTurn) TurnOutcome {
	current, total := uc.machine.Progress()
	return TurnOutcome{
		Question:       turn.Question,
		QuestionNumber: current,
		TotalQuestions: total,
	}
}
