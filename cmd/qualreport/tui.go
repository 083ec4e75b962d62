// This file implements the interactive form using bubbletea: pick the
// export, optionally a definition file and output path, toggle debug, and
// watch the run complete without memorizing flags.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qualreport/cmd/qualreport/ui"
	"qualreport/internal/logging"
	"qualreport/internal/report"
)

// Focus stops, top to bottom.
const (
	focusInput = iota
	focusDefinition
	focusOutput
	focusDebug
	focusGenerate
	focusCount
)

type formModel struct {
	inputs  [3]textinput.Model
	focus   int
	debug   bool
	spinner spinner.Model
	styles  ui.Styles

	generating bool
	status     string
	stats      *report.Stats
	outPath    string
	err        error
}

type (
	generateDoneMsg struct {
		stats report.Stats
		out   string
	}
	generateErrMsg struct{ err error }
)

func newFormModel() formModel {
	styles := ui.DefaultStyles()

	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = "│ "
		ti.CharLimit = 512
		ti.Width = 60
		ti.PromptStyle = styles.Blurred
		return ti
	}

	m := formModel{
		inputs: [3]textinput.Model{
			mk("responses.csv"),
			mk("survey.qsf (optional, auto-detected when blank)"),
			mk("report.html (optional, derived from the export)"),
		},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  styles,
	}
	m.inputs[focusInput].Focus()
	m.inputs[focusInput].PromptStyle = styles.Focused
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+g":
			if !m.generating {
				return m.startGenerate()
			}

		case "tab", "down":
			if !m.generating {
				return m.setFocus(m.focus + 1), nil
			}

		case "shift+tab", "up":
			if !m.generating {
				return m.setFocus(m.focus - 1), nil
			}

		case " ":
			if m.focus == focusDebug {
				m.debug = !m.debug
				return m, nil
			}

		case "enter":
			if m.generating {
				return m, nil
			}
			switch m.focus {
			case focusDebug:
				m.debug = !m.debug
				return m, nil
			case focusGenerate:
				return m.startGenerate()
			default:
				return m.setFocus(m.focus + 1), nil
			}
		}

	case generateDoneMsg:
		m.generating = false
		m.stats = &msg.stats
		m.outPath = msg.out
		m.err = nil
		return m, nil

	case generateErrMsg:
		m.generating = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Route everything else to the focused text input
	if m.focus >= focusInput && m.focus <= focusOutput && !m.generating {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m formModel) setFocus(focus int) formModel {
	m.focus = ((focus % focusCount) + focusCount) % focusCount

	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
			m.inputs[i].PromptStyle = m.styles.Focused
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = m.styles.Blurred
		}
	}
	return m
}

func (m formModel) startGenerate() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.inputs[focusInput].Value())
	if input == "" {
		m.err = fmt.Errorf("select a response export first")
		return m, nil
	}

	def := strings.TrimSpace(m.inputs[focusDefinition].Value())
	if def == "" {
		def = detectDefinitionFile(input)
	}
	out := strings.TrimSpace(m.inputs[focusOutput].Value())
	if out == "" {
		out = deriveOutputPath(input)
	}

	m.generating = true
	m.err = nil
	m.stats = nil
	m.status = "Working..."
	debug := m.debug

	run := func() tea.Msg {
		lc := cfg.Logging
		if debug {
			lc.DebugMode = true
		}
		if err := logging.Initialize(filepath.Dir(input), lc); err != nil {
			return generateErrMsg{err}
		}
		defer logging.CloseAll()

		stats, err := report.Run(cfg, report.Options{
			InputPath:      input,
			OutputPath:     out,
			DefinitionPath: def,
			Debug:          debug,
		})
		if err != nil {
			return generateErrMsg{err}
		}
		return generateDoneMsg{stats: stats, out: out}
	}

	return m, tea.Batch(m.spinner.Tick, run)
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("qualreport"))
	b.WriteString("\n\n")

	labels := [3]string{"Response export", "Definition file", "Output"}
	for i, ti := range m.inputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n\n")
	}

	check := "[ ]"
	style := m.styles.Toggle
	if m.debug {
		check = "[x]"
		style = m.styles.ToggleOn
	}
	cursor := "  "
	if m.focus == focusDebug {
		cursor = "> "
	}
	b.WriteString(cursor + style.Render(check+" Debug mode"))
	b.WriteString("\n\n")

	button := m.styles.Button
	if m.focus == focusGenerate {
		button = m.styles.ButtonHot
	}
	b.WriteString(button.Render("Generate report"))
	b.WriteString("\n\n")

	switch {
	case m.generating:
		b.WriteString(m.spinner.View() + m.styles.Status.Render(" "+m.status))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("✗ " + m.err.Error()))
	case m.stats != nil:
		source := "header inference"
		if m.stats.UsedDefs {
			source = "definition metadata"
		}
		b.WriteString(m.styles.Success.Render(fmt.Sprintf(
			"✓ %d respondents, %d questions (%s)", m.stats.Respondents, m.stats.Questions, source)))
		b.WriteString("\n" + m.styles.Status.Render("  "+m.outPath))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("tab/↑↓ move · space toggle · ctrl+g generate · esc quit"))

	return m.styles.Box.Render(b.String())
}

// runInteractive starts the form UI.
func runInteractive() error {
	p := tea.NewProgram(newFormModel())
	_, err := p.Run()
	return err
}
