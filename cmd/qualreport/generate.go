package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qualreport/cmd/qualreport/ui"
	"qualreport/internal/logging"
	"qualreport/internal/report"
)

var (
	defPath    string
	outputPath string
	logFile    string
	debugMode  bool
)

// generateCmd runs one report generation end to end
var generateCmd = &cobra.Command{
	Use:   "generate [export.csv]",
	Short: "Generate an HTML report from a response export",
	Long: `Reads a survey response export and writes a self-contained HTML report.

A survey definition file (.qsf) supplies exact question types and labels; when
--qsf is omitted, a definition file sitting next to the export with the same
base name is picked up automatically. Without any definition the structure is
inferred from column identifiers and header text.

Examples:
  qualreport generate responses.csv
  qualreport generate responses.csv --qsf survey.qsf -o report.html
  qualreport generate responses.csv --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&defPath, "qsf", "", "Survey definition file (default: auto-detect next to the export)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output HTML path (default: <export>_report.html)")
	generateCmd.Flags().BoolVar(&debugMode, "debug", false, "Include debug blocks in the report and write category logs")
	generateCmd.Flags().StringVar(&logFile, "log", "", "Write all debug logs to a single file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]

	out := outputPath
	if out == "" {
		out = deriveOutputPath(input)
	}

	def := defPath
	if def == "" {
		def = detectDefinitionFile(input)
		if def != "" {
			logger.Info("auto-detected definition file", zap.String("path", def))
		}
	}

	lc := cfg.Logging
	if debugMode {
		lc.DebugMode = true
	}
	if logFile != "" {
		lc.File = logFile
	}
	if err := logging.Initialize(filepath.Dir(input), lc); err != nil {
		return err
	}
	defer logging.CloseAll()

	stats, err := report.Run(cfg, report.Options{
		InputPath:      input,
		OutputPath:     out,
		DefinitionPath: def,
		Debug:          debugMode,
		Progress: func(step string) {
			logger.Debug("progress", zap.String("step", step))
		},
	})
	if err != nil {
		return err
	}

	fmt.Println(summaryView(stats, out))
	return nil
}

// deriveOutputPath turns responses.csv into responses_report.html.
func deriveOutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_report.html"
}

// detectDefinitionFile looks for a definition file next to the export: same
// base name first, then any single .qsf in the directory.
func detectDefinitionFile(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	for _, candidate := range []string{base + ".qsf", base + ".QSF"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(input), "*.qsf"))
	if err == nil && len(matches) == 1 {
		return matches[0]
	}
	return ""
}

func summaryView(stats report.Stats, out string) string {
	styles := ui.DefaultStyles()

	source := "header inference"
	if stats.UsedDefs {
		source = "definition metadata"
	}

	body := fmt.Sprintf("%s\n\n%s %d respondents, %d questions (%s)\n%s %s",
		styles.Success.Render("Report generated"),
		styles.Label.Render("Parsed:"), stats.Respondents, stats.Questions, source,
		styles.Label.Render("Output:"), out)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Success).
		Padding(0, 2).
		Render(body)
}
