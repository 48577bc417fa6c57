package dto

import "github.com/tidwall/gjson"

type InterviewReport struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Tips       []string `json:"tips"`
}

// InterviewTurn is one server reply in the mock interview. Exactly one of
// Question or Report is set on a well-formed success.
type InterviewTurn struct {
	Success        bool             `json:"success"`
	Question       string           `json:"question,omitempty"`
	QuestionNumber int              `json:"question_number,omitempty"`
	TotalQuestions int              `json:"total_questions,omitempty"`
	Report         *InterviewReport `json:"report,omitempty"`
}

func ParseInterviewTurn(body []byte) InterviewTurn {
	r := gjson.ParseBytes(body)
	turn := InterviewTurn{
		Success:        r.Get("success").Bool(),
		Question:       text(r.Get("question")),
		QuestionNumber: int(r.Get("question_number").Int()),
		TotalQuestions: int(r.Get("total_questions").Int()),
	}
	if rep := r.Get("report"); rep.IsObject() {
		report := parseReport(rep)
		turn.Report = &report
	}
	return turn
}

func parseReport(r gjson.Result) InterviewReport {
	return InterviewReport{
		Strengths:  stringList(r.Get("strengths")),
		Weaknesses: stringList(r.Get("weaknesses")),
		Tips:       stringList(r.Get("tips")),
	}
}

type QuestionList struct {
	General    []string `json:"General"`
	Behavioral []string `json:"Behavioral"`
	Technical  []string `json:"Technical"`
}

func ParseQuestionList(body []byte) QuestionList {
	r := gjson.ParseBytes(body)
	return QuestionList{
		General:    stringList(r.Get("General")),
		Behavioral: stringList(r.Get("Behavioral")),
		Technical:  stringList(r.Get("Technical")),
	}
}

type AnswerTemplates struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// ParseAnswerTemplates falls back to the asked question when the backend
// does not echo it.
func ParseAnswerTemplates(body []byte, asked string) AnswerTemplates {
	r := gjson.ParseBytes(body)
	q := text(r.Get("question"))
	if q == "" {
		q = asked
	}
	return AnswerTemplates{Question: q, Answers: stringList(r.Get("answers"))}
}
