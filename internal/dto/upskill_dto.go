package dto

import "github.com/tidwall/gjson"

type CareerPath struct {
	Path            string   `json:"path"`
	RequiredSkills  []string `json:"required_skills"`
	TransitionSteps []string `json:"transition_steps"`
}

type CareerPaths struct {
	Paths []CareerPath `json:"career_paths"`
}

func ParseCareerPaths(body []byte) CareerPaths {
	out := CareerPaths{Paths: []CareerPath{}}
	gjson.GetBytes(body, "career_paths").ForEach(func(_, p gjson.Result) bool {
		if !p.IsObject() {
			return true
		}
		out.Paths = append(out.Paths, CareerPath{
			Path:            text(p.Get("path")),
			RequiredSkills:  stringList(p.Get("required_skills")),
			TransitionSteps: stringList(p.Get("transition_steps")),
		})
		return true
	})
	return out
}

type Project struct {
	Idea            string   `json:"idea"`
	SkillsDeveloped []string `json:"skills_developed"`
	EstimatedTime   string   `json:"estimated_time"`
}

type ProjectSuggestions struct {
	Projects []Project `json:"projects"`
}

func ParseProjectSuggestions(body []byte) ProjectSuggestions {
	out := ProjectSuggestions{Projects: []Project{}}
	gjson.GetBytes(body, "projects").ForEach(func(_, p gjson.Result) bool {
		if !p.IsObject() {
			return true
		}
		out.Projects = append(out.Projects, Project{
			Idea:            text(p.Get("idea")),
			SkillsDeveloped: stringList(p.Get("skills_developed")),
			EstimatedTime:   text(p.Get("estimated_time")),
		})
		return true
	})
	return out
}

type MiniCourse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
	Modules     []string `json:"modules"`
}

func ParseMiniCourse(body []byte) MiniCourse {
	r := gjson.ParseBytes(body)
	return MiniCourse{
		Title:       text(r.Get("title")),
		Description: text(r.Get("description")),
		Objectives:  stringList(r.Get("objectives")),
		Modules:     stringList(r.Get("modules")),
	}
}
