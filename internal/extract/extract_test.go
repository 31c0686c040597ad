package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Andrew Smith
Senior Engineer
john.smith@example.com | +91 98765 43210

Skills
Python, SQL, Docker
Machine Learning / AWS

Experience
Software Engineer - Acme Corp | 2019 - 2022
Data Analyst @ Globex
Jan 2017 - Dec 2018

Education
B.Tech - IIT Bombay, 2016
`

const sampleJob = `Job Title: Backend Engineer
We are hiring.
Requirements: python, sql, aws
- 3-5 years of experience
- B.Tech or MSc preferred
`

func TestSkillsFromSection(t *testing.T) {
	e := New(DefaultRules())

	assert.Equal(t, []string{"python", "sql", "docker", "machine learning", "aws"}, e.Skills(sampleResume))
}

func TestSkillsWithoutSectionScansWholeText(t *testing.T) {
	e := New(DefaultRules())

	got := e.Skills("Built dashboards in Power BI and Excel\nDeployed with Kubernetes on GCP")
	assert.Equal(t, []string{"power bi", "excel", "kubernetes", "gcp"}, got)
}

func TestSkillsKeepsSymbolTerms(t *testing.T) {
	e := New(DefaultRules())

	got := e.Skills("Technical Skills\nC++ | C# | Node.js\n")
	assert.Equal(t, []string{"c++", "c#", "node.js"}, got)
}

func TestSkillsCustomVocabulary(t *testing.T) {
	e := New(Rules{Vocabulary: []string{"Go", "Rust", "go"}})

	assert.Equal(t, []string{"go", "rust"}, e.Vocabulary())
	assert.Equal(t, []string{"go", "rust"}, e.Skills("Skills\nGo, Rust, Python\n"))
}

func TestRequiredSkills(t *testing.T) {
	e := New(DefaultRules())

	assert.Equal(t, []string{"python", "sql", "aws"}, e.RequiredSkills("Requirements: python, sql, aws"))
	assert.Equal(t, []string{"python", "sql", "aws"}, e.RequiredSkills(sampleJob))
	assert.Equal(t, []string{"docker", "linux"}, e.RequiredSkills("Backend role\nYou know docker and linux well."))
	assert.Empty(t, e.RequiredSkills(""))
}

func TestRequiredEducationAndExperience(t *testing.T) {
	e := New(DefaultRules())

	assert.Equal(t, []string{"b.tech", "msc"}, e.RequiredEducation(sampleJob))
	assert.Equal(t, []string{"phd"}, e.RequiredEducation("Research Scientist\nA PhD in physics."))
	assert.Equal(t, []string{"3-5 years"}, RequiredExperience(sampleJob))
	assert.Equal(t,
		[]string{"2+ years", "3-5 years", "4 to 6 years"},
		RequiredExperience("2+ Years backend, 3-5 years cloud, 4 to 6 years overall, 2+ years again"),
	)
}

func TestName(t *testing.T) {
	e := New(DefaultRules())

	tests := []struct {
		name   string
		text   string
		emails []string
		expect string
	}{
		{
			name:   "headline",
			text:   "John Andrew Smith\nSenior Engineer",
			expect: "John Andrew Smith",
		},
		{
			name:   "title cases words",
			text:   "JANE DOE\n",
			expect: "Jane Doe",
		},
		{
			name:   "email fallback",
			text:   "123 Main Street\ndivya.pawar96@gmail.com",
			emails: []string{"divya.pawar96@gmail.com"},
			expect: "Divya Pawar",
		},
		{
			name:   "too short words",
			text:   "Al Bo",
			expect: "",
		},
		{
			name:   "absent",
			text:   "Curriculum 2024",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, e.Name(tt.text, tt.emails))
		})
	}
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Divya Pawar", NameFromEmail("divya.pawar96@gmail.com"))
	assert.Equal(t, "Jdoe", NameFromEmail("jdoe@example.com"))
	assert.Equal(t, "", NameFromEmail("1234@example.com"))
	assert.Equal(t, "", NameFromEmail("not-an-email"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Backend Engineer", Title(sampleJob))
	assert.Equal(t, "Data Scientist", Title("\n  Data Scientist\nRequirements"))
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "", Title("We are looking for a talented engineer to join our growing platform team in Pune"))
}

func TestContacts(t *testing.T) {
	text := "Mail a.b@x.io or a.b@x.io, c_d+1@mail.example.com\nCall +1 (555) 123-4567 between 2019 - 2022"

	assert.Equal(t, []string{"a.b@x.io", "c_d+1@mail.example.com"}, Emails(text))
	assert.Equal(t, []string{"+1 (555) 123-4567"}, Phones(text))
	assert.Equal(t, []string{"+91 98765 43210"}, Phones(sampleResume))
	assert.Empty(t, Emails(""))
	assert.Empty(t, Phones(""))
}

func TestEducation(t *testing.T) {
	e := New(DefaultRules())

	got := e.Education(sampleResume)
	require.Len(t, got, 1)
	assert.Equal(t, Education{Degree: "B.Tech", Institution: "IIT Bombay, 2016", Year: "2016"}, got[0])

	got = e.Education("MSc, University of Pune 2012\nHobbies: chess\nSt. Xavier's College")
	require.Len(t, got, 2)
	assert.Equal(t, Education{Degree: "MSc", Institution: "University of Pune 2012", Year: "2012"}, got[0])
	assert.Equal(t, Education{}, got[1])
}

func TestExperience(t *testing.T) {
	e := New(DefaultRules())

	got := e.Experience(sampleResume)
	assert.Equal(t, []Experience{
		{Role: "Software Engineer", Company: "Acme Corp", Duration: "2019 - 2022"},
		{Role: "Data Analyst", Company: "Globex"},
		{Role: "Jan 2017", Company: "Dec 2018"},
	}, got)
}

func TestExperienceLineKinds(t *testing.T) {
	e := New(DefaultRules())

	tests := []struct {
		name string
		text string
		want []Experience
	}{
		{
			name: "hyphenated dates form an entry",
			text: "Experience\nData Analyst @ Globex\nJan 2017 - Dec 2018\n",
			want: []Experience{
				{Role: "Data Analyst", Company: "Globex"},
				{Role: "Jan 2017", Company: "Dec 2018"},
			},
		},
		{
			name: "date only section",
			text: "Experience\nJun 2015 - Present\n",
			want: []Experience{{Role: "Jun 2015", Company: "Present"}},
		},
		{
			name: "en dash span attaches as duration",
			text: "Experience\nData Analyst @ Globex\nJan 2017 – Dec 2018\n",
			want: []Experience{{Role: "Data Analyst", Company: "Globex", Duration: "Jan 2017 – Dec 2018"}},
		},
		{
			name: "year span without separator attaches as duration",
			text: "Experience\nEngineer @ Initech\n2019 – present\n",
			want: []Experience{{Role: "Engineer", Company: "Initech", Duration: "2019 – present"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Experience(tt.text))
		})
	}
}

func TestExperienceDurationDoesNotOverwrite(t *testing.T) {
	e := New(DefaultRules())

	got := e.Experience("Work Experience\nEngineer @ Initech | 2020 - 2021\nMar 2018 – Apr 2019\nAnalyst @ Hooli\nMay 2016 – Feb 2018\n")
	require.Len(t, got, 2)
	assert.Equal(t, "2020 - 2021", got[0].Duration)
	assert.Equal(t, "May 2016 – Feb 2018", got[1].Duration)
}

func TestPreview(t *testing.T) {
	e := New(Rules{PreviewLength: 5})

	assert.Equal(t, "abcde ...", e.Preview("abcdefgh"))
	assert.Equal(t, "abc", e.Preview("abc"))
}

func TestFirstMatch(t *testing.T) {
	never := Strategy[int]{Name: "never", Match: func(string) (int, bool) { return 0, false }}
	length := Strategy[int]{Name: "length", Match: func(s string) (int, bool) { return len(s), true }}
	one := Strategy[int]{Name: "one", Match: func(string) (int, bool) { return 1, true }}

	v, name, ok := FirstMatch("abc", never, length, one)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, "length", name)

	_, _, ok = FirstMatch("abc", never)
	assert.False(t, ok)
}
