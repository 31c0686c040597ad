package parser

import "strings"

// ResumeRow is the flat CSV projection of a Resume.
type ResumeRow struct {
	FilePath     string  `json:"file_path"`
	Name         string  `json:"name"`
	Emails       string  `json:"emails"`
	Phones       string  `json:"phones"`
	Skills       string  `json:"skills"`
	Education    string  `json:"education"`
	Experience   string  `json:"experience"`
	QualityScore float64 `json:"resume_quality_score"`
}

// ResumeColumns is the column order of ResumeRow.
var ResumeColumns = []string{"file_path", "name", "emails", "phones", "skills", "education", "experience", "resume_quality_score"}

// JobRow is the flat CSV projection of a Job.
type JobRow struct {
	FilePath           string `json:"file_path"`
	Title              string `json:"title"`
	RequiredSkills     string `json:"required_skills"`
	RequiredEducation  string `json:"required_education"`
	RequiredExperience string `json:"required_experience"`
	RawTextPreview     string `json:"raw_text_preview"`
}

// JobColumns is the column order of JobRow.
var JobColumns = []string{"file_path", "title", "required_skills", "required_education", "required_experience", "raw_text_preview"}

// Row flattens the resume. Lists are comma separated, entries of education
// and experience are joined with "; " and their parts with " | ".
func (r *Resume) Row() ResumeRow {
	education := make([]string, 0, len(r.Education))
	for _, e := range r.Education {
		education = append(education, joinPresent(e.Degree, e.Institution, e.Year))
	}
	experience := make([]string, 0, len(r.Experience))
	for _, e := range r.Experience {
		experience = append(experience, joinPresent(e.Role, e.Company, e.Duration))
	}

	return ResumeRow{
		FilePath:     r.FilePath,
		Name:         r.Name,
		Emails:       strings.Join(r.Emails, ", "),
		Phones:       strings.Join(r.Phones, ", "),
		Skills:       strings.Join(r.Skills, ", "),
		Education:    strings.Join(education, "; "),
		Experience:   strings.Join(experience, "; "),
		QualityScore: r.QualityScore,
	}
}

// Row flattens the job description.
func (j *Job) Row() JobRow {
	return JobRow{
		FilePath:           j.FilePath,
		Title:              j.Title,
		RequiredSkills:     strings.Join(j.RequiredSkills, ", "),
		RequiredEducation:  strings.Join(j.RequiredEducation, ", "),
		RequiredExperience: strings.Join(j.RequiredExperience, ", "),
		RawTextPreview:     j.RawTextPreview,
	}
}

func joinPresent(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}
