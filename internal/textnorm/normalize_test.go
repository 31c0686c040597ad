package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "lower cases and trims", input: "  Python  ", expect: "python"},
		{name: "keeps skill symbols", input: "C++, C#, Node.js", expect: "c++ c# node.js"},
		{name: "collapses whitespace", input: "machine\t\tlearning\n\nnlp", expect: "machine learning nlp"},
		{name: "drops punctuation", input: "skills: (sql) / aws!", expect: "skills sql aws"},
		{name: "keeps hyphenated terms", input: "Scikit-Learn", expect: "scikit-learn"},
		{name: "only punctuation", input: "!!! ???", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Senior  Engineer @ ACME | 2019 – 2022", "Power BI; Tableau", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestUniquePreserveOrder(t *testing.T) {
	t.Parallel()

	got := UniquePreserveOrder([]string{"sql", "python", "", "sql", "aws", "python"})
	expect := []string{"sql", "python", "aws"}
	if len(got) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
	for i := range expect {
		if got[i] != expect[i] {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	got := Lines("first\r\n\n  second  \n\t\nthird")
	if len(got) != 3 || got[0] != "first" || got[1] != "second" || got[2] != "third" {
		t.Fatalf("unexpected lines: %q", got)
	}
}
