package interview

import "github.com/fadilmartias/careercraft/internal/dto"

type FailureKind int

const (
	FailedAnswer FailureKind = iota
	FailedReport
)

// SyntheticReport stands in for a report the server could not deliver, so the
// visitor is not left on a broken screen.
func SyntheticReport(message string, kind FailureKind) dto.InterviewReport {
	if kind == FailedReport {
		return dto.InterviewReport{
			Strengths:  []string{},
			Weaknesses: []string{"An error occurred while generating the report: " + message},
			Tips:       []string{"Your interview progress might not have been saved. Please try again."},
		}
	}
	return dto.InterviewReport{
		Strengths:  []string{},
		Weaknesses: []string{"An error occurred: " + message},
		Tips:       []string{"Please try starting a new interview. The AI service may be unavailable."},
	}
}
