// Package solutions checks that solutions.json, the solutions/ directory and
// the generated dropdown blocks of the sync workflows agree.
//
// A pass runs three checks in order. Loader and reconciliation failures stop
// the pass immediately. Workflow-block failures are collected across all
// workflow files and returned together as *WorkflowErrors.
package solutions

import (
	"context"
	"fmt"

	"github.com/solutionops/solutions-check/pkg/config"
	"github.com/solutionops/solutions-check/pkg/logger"
)

var validatorLog = logger.New("solutions:validator")

// Validator runs validation passes for one configuration.
type Validator struct {
	cfg      *config.Config
	block    *BlockSpec
	info     func(string)
	failFast bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithInfo sets the sink for informational progress lines.
func WithInfo(info func(string)) Option {
	return func(v *Validator) {
		v.info = info
	}
}

// WithFailFast stops the workflow checks at the first failing file.
func WithFailFast(failFast bool) Option {
	return func(v *Validator) {
		v.failFast = failFast
	}
}

// NewValidator creates a Validator for cfg.
func NewValidator(cfg *config.Config, opts ...Option) *Validator {
	v := &Validator{
		cfg:   cfg,
		block: NewBlockSpec(cfg.StartMarker, cfg.EndMarker, cfg.Sentinel),
		info:  func(string) {},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run performs one validation pass. The returned report is never nil; on
// failure it holds whatever was gathered before the pass stopped.
func (v *Validator) Run(ctx context.Context) (report *Report, err error) {
	report = newReport()
	defer func() { report.finish(err) }()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	fileLabel := v.cfg.SolutionsFileLabel()
	declared, err := LoadDeclaredSolutions(v.cfg.SolutionsFilePath())
	if err != nil {
		return report, err
	}
	report.Declared = declared
	v.info(fmt.Sprintf("%s entries: %s", fileLabel, FormatNames(declared)))

	dirs, err := ScanSolutionDirectories(v.cfg.SolutionsDirPath())
	if err != nil {
		return report, fmt.Errorf("failed to scan %s: %w", v.cfg.SolutionsDirLabel(), err)
	}
	report.Directories = dirs
	v.info(fmt.Sprintf("solution directories: %s", FormatNames(dirs)))

	if err := Reconcile(declared, dirs, fileLabel, v.cfg.SolutionsDirLabel()); err != nil {
		return report, err
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	return report, v.checkWorkflows(report, declared)
}

func (v *Validator) checkWorkflows(report *Report, declared []string) error {
	collector := NewErrorCollector(v.failFast)

	for _, wf := range v.cfg.Workflows {
		result, err := v.block.CheckWorkflow(wf, v.cfg.Path(wf), declared)
		report.Workflows = append(report.Workflows, result)
		if stop := collector.Add(err); stop != nil {
			break
		}
	}

	if !collector.HasErrors() {
		validatorLog.Printf("All %d workflows in sync", len(v.cfg.Workflows))
		return nil
	}
	validatorLog.Printf("%d of %d workflows out of sync", collector.Count(), len(v.cfg.Workflows))
	return &WorkflowErrors{Errs: collector.Errors()}
}
