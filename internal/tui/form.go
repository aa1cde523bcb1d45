// Package tui provides a full-screen bubbletea form for entering reactor
// parameters.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/viz"
)

// ErrAborted is returned by RunForm when the user quits without submitting.
var ErrAborted = errors.New("tui: form aborted")

// submitRow is the cursor position after the last field.
var submitRow = len(reactor.FieldNames)

type Form struct {
	params  reactor.Params
	cursor  int
	editing bool
	editBuf string
	errs    []string

	accepted bool
	aborted  bool
}

func NewForm(initial reactor.Params) Form {
	return Form{params: initial}
}

func (f Form) Params() reactor.Params { return f.params }
func (f Form) Accepted() bool         { return f.accepted }
func (f Form) Aborted() bool          { return f.aborted }
func (f Form) Errors() []string       { return f.errs }

func (f Form) Init() tea.Cmd { return nil }

func (f *Form) field(i int) *float64 {
	ptr, _ := f.params.Field(reactor.FieldNames[i])
	return ptr
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	if f.editing {
		return f.editKey(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		f.aborted = true
		return f, tea.Quit
	case "up", "k", "shift+tab":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j", "tab":
		if f.cursor < submitRow {
			f.cursor++
		}
	case "enter", " ":
		if f.cursor == submitRow {
			return f.submit()
		}
		f.editing = true
		f.editBuf = strconv.FormatFloat(*f.field(f.cursor), 'g', -1, 64)
	}
	return f, nil
}

func (f Form) editKey(key tea.KeyMsg) (Form, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		f.aborted = true
		return f, tea.Quit
	case "enter", "tab":
		v, err := strconv.ParseFloat(f.editBuf, 64)
		if err != nil {
			f.errs = []string{fmt.Sprintf("%q is not a number", f.editBuf)}
			return f, nil
		}
		*f.field(f.cursor) = v
		f.editing = false
		f.editBuf = ""
		f.errs = nil
		if f.cursor < submitRow {
			f.cursor++
		}
	case "esc":
		f.editing = false
		f.editBuf = ""
	case "backspace":
		if len(f.editBuf) > 0 {
			f.editBuf = f.editBuf[:len(f.editBuf)-1]
		}
	default:
		s := key.String()
		if len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
				f.editBuf += s
			}
		}
	}
	return f, nil
}

// submit accepts the form only when every input is positive where required
// and all balance equations hold.
func (f Form) submit() (Form, tea.Cmd) {
	f.errs = nil
	if err := reactor.CheckInputs(f.params); err != nil {
		f.errs = append(f.errs, strings.Split(err.Error(), "\n")...)
	}
	for _, eq := range reactor.ValidateFlows(f.params.Flows).Violations {
		f.errs = append(f.errs, "doesn't satisfy "+eq.String())
	}
	if len(f.errs) > 0 {
		return f, nil
	}
	f.accepted = true
	return f, tea.Quit
}

func (f Form) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + viz.HeaderStyle.Render("three-reactor cstr") + "\n\n")

	var rows strings.Builder
	for i, name := range reactor.FieldNames {
		val := fmt.Sprintf("%10.4g", *f.field(i))
		if f.editing && i == f.cursor {
			val = fmt.Sprintf("%10s", f.editBuf+"▋")
		}
		if i == f.cursor {
			rows.WriteString(viz.Selected.Render("▸ "+fmt.Sprintf("%-5s", name)) + viz.Value.Render(val) + "\n")
		} else {
			rows.WriteString("  " + viz.Label.Render(fmt.Sprintf("%-5s", name)) + viz.Subtle.Render(val) + "\n")
		}
	}
	rows.WriteString("\n")
	if f.cursor == submitRow {
		rows.WriteString(viz.Selected.Render("▸ [ simulate ]"))
	} else {
		rows.WriteString("  " + viz.Subtle.Render("[ simulate ]"))
	}
	b.WriteString(viz.Panel.Render(rows.String()) + "\n")

	if len(f.errs) > 0 {
		b.WriteString("\n")
		for _, e := range f.errs {
			b.WriteString("  " + viz.ErrorText.Render("✗ "+e) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + viz.KeyHint.Render("↑↓ select  enter edit/submit  esc cancel  q quit") + "\n")
	return b.String()
}

// RunForm shows the form on the alternate screen and returns the accepted
// parameters. opts are applied after the defaults, e.g. tea.WithInput.
func RunForm(initial reactor.Params, opts ...tea.ProgramOption) (reactor.Params, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewForm(initial), opts...)
	final, err := p.Run()
	if err != nil {
		return reactor.Params{}, fmt.Errorf("run form: %w", err)
	}
	f, ok := final.(Form)
	if !ok || !f.accepted {
		return reactor.Params{}, ErrAborted
	}
	return f.params, nil
}
