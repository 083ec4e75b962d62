// Package report orchestrates a full report run: read the response export,
// resolve question structures (with definition metadata when available),
// render every response, and write one self-contained HTML document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qualreport/internal/config"
	"qualreport/internal/csvio"
	"qualreport/internal/logging"
	"qualreport/internal/qsf"
	"qualreport/internal/render"
	"qualreport/internal/survey"
)

// Options configures one report run.
type Options struct {
	InputPath      string // response export CSV
	OutputPath     string // HTML file to write
	DefinitionPath string // optional survey definition file
	Debug          bool   // include debug blocks in the report

	// Progress, when set, receives coarse step descriptions for UI display.
	Progress func(step string)
}

// Stats summarizes a completed run.
type Stats struct {
	Respondents int
	Questions   int
	UsedDefs    bool
}

// Run generates a report. A definition path that is supplied but unreadable
// is an error; an empty path just means unassisted structure resolution.
func Run(cfg *config.Config, opts Options) (Stats, error) {
	log := logging.Get(logging.CategoryReport)
	timer := logging.StartTimer(logging.CategoryReport, "report run")
	defer timer.Stop()

	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	progress("Validating export...")
	if _, err := os.Stat(opts.InputPath); err != nil {
		return Stats{}, fmt.Errorf("response file not usable: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(opts.InputPath), ".csv") {
		log.Warn("input %s does not have a .csv extension", opts.InputPath)
	}

	var defs qsf.Definitions
	if opts.DefinitionPath != "" {
		progress("Parsing definition metadata...")
		var err error
		defs, err = qsf.ParseFile(opts.DefinitionPath)
		if err != nil {
			return Stats{}, fmt.Errorf("definition file %s: %w", opts.DefinitionPath, err)
		}
	}

	progress("Reading responses...")
	table, err := csvio.ReadFile(opts.InputPath)
	if err != nil {
		return Stats{}, err
	}

	progress("Resolving question structures...")
	questions := survey.Resolve(table, defs)

	progress("Rendering report...")
	doc := buildHTML(buildParams{
		questions: questions,
		table:     table,
		renderer:  render.New(cfg.Heuristics),
		palette:   cfg.Palette,
		debug:     opts.Debug,
		hasDefs:   len(defs) > 0,
		now:       time.Now(),
	})

	progress("Writing file...")
	if err := os.WriteFile(opts.OutputPath, []byte(doc), 0o644); err != nil {
		return Stats{}, fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("complete: %d respondents, %d questions -> %s",
		len(table.Rows), len(questions), opts.OutputPath)

	return Stats{
		Respondents: len(table.Rows),
		Questions:   len(questions),
		UsedDefs:    len(defs) > 0,
	}, nil
}
