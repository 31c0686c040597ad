// Package parser builds structured resume and job records from documents.
package parser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/extract"
	"github.com/spigell/resume-screener/internal/logger"
)

// DefaultWorkers is the batch parsing concurrency used when none is set.
const DefaultWorkers = 4

const logPreviewLength = 120

// Documents is the document-to-text capability used by the parser.
type Documents interface {
	Text(ctx context.Context, path string) (string, error)
	List(dir string) ([]string, error)
}

// Parser turns document text into Resume and Job records.
type Parser struct {
	extractor *extract.Extractor
	docs      Documents
	workers   int
	logger    *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithWorkers sets the batch parsing concurrency.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger sets the parser logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Parser. A nil extractor uses the default rules.
func New(extractor *extract.Extractor, docs Documents, opts ...Option) *Parser {
	if extractor == nil {
		extractor = extract.New(extract.DefaultRules())
	}
	p := &Parser{
		extractor: extractor,
		docs:      docs,
		workers:   DefaultWorkers,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseResume extracts a Resume from already converted text.
func (p *Parser) ParseResume(path, text string) *Resume {
	emails := extract.Emails(text)

	r := &Resume{
		FilePath:       path,
		Name:           p.extractor.Name(text, emails),
		Emails:         emails,
		Phones:         extract.Phones(text),
		Skills:         nonNil(p.extractor.Skills(text)),
		Education:      p.extractor.Education(text),
		Experience:     p.extractor.Experience(text),
		RawTextPreview: p.extractor.Preview(text),
	}
	r.QualityScore = Quality(r)
	return r
}

// ParseJob extracts a Job from already converted text.
func (p *Parser) ParseJob(path, text string) *Job {
	return &Job{
		FilePath:           path,
		Title:              extract.Title(text),
		RequiredSkills:     nonNil(p.extractor.RequiredSkills(text)),
		RequiredEducation:  nonNil(p.extractor.RequiredEducation(text)),
		RequiredExperience: nonNil(extract.RequiredExperience(text)),
		RawTextPreview:     p.extractor.Preview(text),
	}
}

// ParseResumeFile reads path and parses it as a resume.
func (p *Parser) ParseResumeFile(ctx context.Context, path string) (*Resume, error) {
	text, err := p.text(ctx, path)
	if err != nil {
		return nil, err
	}

	r := p.ParseResume(path, text)
	p.logger.Debug("resume parsed",
		zap.String("path", path),
		zap.String("name", r.Name),
		zap.Int("skills", len(r.Skills)),
		zap.Float64("quality", r.QualityScore),
		zap.String("preview", logger.TruncateForLog(r.RawTextPreview, logPreviewLength)),
	)
	return r, nil
}

// ParseJobFile reads path and parses it as a job description.
func (p *Parser) ParseJobFile(ctx context.Context, path string) (*Job, error) {
	text, err := p.text(ctx, path)
	if err != nil {
		return nil, err
	}

	j := p.ParseJob(path, text)
	p.logger.Debug("job description parsed",
		zap.String("path", path),
		zap.String("title", j.Title),
		zap.Strings("required_skills", j.RequiredSkills),
	)
	return j, nil
}

func (p *Parser) text(ctx context.Context, path string) (string, error) {
	if p.docs == nil {
		return "", fmt.Errorf("no document reader configured for %q", path)
	}
	p.logger.Debug("parsing document", zap.String("path", path))
	return p.docs.Text(ctx, path)
}

// Failure records a document that could not be parsed.
type Failure struct {
	Path string
	Err  error
}

// Batch is the outcome of parsing several resumes. Resumes are in completion
// order, not input order.
type Batch struct {
	Resumes  []*Resume
	Failures []Failure
}

type outcome struct {
	resume *Resume
	path   string
	err    error
}

// ParseResumes parses paths on a bounded worker pool. A failing document is
// logged and reported in Failures without affecting the others. Every path
// ends up in exactly one of Resumes or Failures.
func (p *Parser) ParseResumes(ctx context.Context, paths []string) Batch {
	start := time.Now()

	workers := p.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				r, err := p.ParseResumeFile(ctx, path)
				results <- outcome{resume: r, path: path, err: err}
			}
		}()
	}

	// Paths left unsent after cancellation are reported as failures.
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		for i, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				for _, skipped := range paths[i:] {
					results <- outcome{path: skipped, err: fmt.Errorf("not parsed: %w", ctx.Err())}
				}
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	batch := Batch{Resumes: []*Resume{}}
	for res := range results {
		if res.err != nil {
			p.logger.Error("failed to parse resume", zap.String("path", res.path), zap.Error(res.err))
			batch.Failures = append(batch.Failures, Failure{Path: res.path, Err: res.err})
			continue
		}
		batch.Resumes = append(batch.Resumes, res.resume)
	}

	p.logger.Info("resumes parsed",
		zap.Int("parsed", len(batch.Resumes)),
		zap.Int("failed", len(batch.Failures)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return batch
}

// ParseDir parses every supported document below dir.
func (p *Parser) ParseDir(ctx context.Context, dir string) (Batch, error) {
	if p.docs == nil {
		return Batch{}, fmt.Errorf("no document reader configured for %q", dir)
	}
	paths, err := p.docs.List(dir)
	if err != nil {
		return Batch{}, err
	}
	return p.ParseResumes(ctx, paths), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
