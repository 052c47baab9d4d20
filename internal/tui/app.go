package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/san-kum/bintree/internal/session"
	"github.com/san-kum/bintree/internal/tree"
	"github.com/san-kum/bintree/internal/viz"
)

// Options configures the interactive session.
type Options struct {
	Strict       bool
	Theme        string
	CanvasWidth  int
	CanvasHeight int
	Layout       viz.CanvasLayout
	// Initial, when set, is dispatched before the first frame.
	Initial string
}

type model struct {
	opts    Options
	styles  viz.Styles
	session *session.Session
	input   textinput.Model

	lastInput string
	output    string
	drawing   string
	stats     tree.Stats
	err       error
	// endErr is the input error that ended the session.
	endErr error

	completion int
	width      int
}

func newModel(opts Options) model {
	inp := textinput.New()
	inp.Placeholder = "encoding (ABC##DE#G##F###) or command (Recursion-PreOrder)"
	inp.Prompt = "› "
	inp.CharLimit = 0
	inp.Focus()

	m := model{
		opts:       opts,
		styles:     viz.NewStyles(viz.GetTheme(opts.Theme)),
		session:    session.New(session.WithStrict(opts.Strict)),
		input:      inp,
		completion: -1,
		width:      80,
	}
	m.redraw()
	if opts.Initial != "" {
		m = m.submit(opts.Initial)
	}
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m = m.submit(m.input.Value())
			m.input.Reset()
			m.completion = -1
			if m.endErr != nil {
				return m, tea.Quit
			}
			return m, nil
		case "tab":
			m = m.complete()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches one line. Commands print into the output box, encodings
// replace and redraw the tree and anything else ends the session.
func (m model) submit(line string) model {
	m.lastInput = line
	m.err = nil

	res, err := m.session.Dispatch(line)
	if err != nil {
		if m.session.Ended() {
			m.endErr = err
		} else {
			m.err = err
		}
		return m
	}
	if res.Built {
		m.output = ""
		m.redraw()
		return m
	}
	m.output = res.Output
	return m
}

// complete cycles the input through the command identifiers, starting from
// the closest match to what has been typed.
func (m model) complete() model {
	cmds := session.Commands()
	if m.completion < 0 {
		m.completion = 0
		if cmd, ok := session.Suggest(m.input.Value()); ok {
			for i, c := range cmds {
				if c == cmd {
					m.completion = i
				}
			}
		}
	} else {
		m.completion = (m.completion + 1) % len(cmds)
	}
	m.input.SetValue(string(cmds[m.completion]))
	m.input.CursorEnd()
	return m
}

func (m *model) redraw() {
	t := m.session.Tree()
	m.stats = tree.Summarize(t)
	c := viz.DrawTree(t, m.opts.CanvasWidth, m.opts.CanvasHeight, m.opts.Layout)
	m.drawing = strings.TrimRight(c.String(), "\n")
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n  " + s.Title.Render("bintree") + s.Label.Render("  binary tree builder & traversals") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n\n")

	out := m.output
	if out == "" {
		out = s.Hint.Render("(no output)")
	} else {
		out = s.Output.Render(out)
	}
	label := "output"
	if m.lastInput != "" {
		label = "output · " + m.lastInput
	}
	b.WriteString(indent(s.Panel.Render(s.Label.Render(label)+"\n"+out)) + "\n")

	if m.err != nil {
		b.WriteString("  " + s.Error.Render(m.err.Error()) + "\n")
	}

	info := fmt.Sprintf("%s %s  %s %s  %s %s",
		s.Label.Render("nodes"), s.Value.Render(fmt.Sprint(m.stats.Size)),
		s.Label.Render("height"), s.Value.Render(fmt.Sprint(m.stats.Height)),
		s.Label.Render("leaves"), s.Value.Render(fmt.Sprint(m.stats.Leaves)))
	b.WriteString(indent(s.Panel.Render(info+"\n"+s.Tree.Render(m.drawing))) + "\n\n")

	b.WriteString("  " + s.KeyHints("enter", "run", "tab", "commands", "esc", "quit") + "\n")
	return b.String()
}

func indent(block string) string {
	return lipgloss.NewStyle().MarginLeft(2).Render(block)
}

// Run starts the interactive session and blocks until it ends. When the
// session ended because of invalid input, that error is returned.
func Run(opts Options) error {
	m := newModel(opts)
	if m.endErr != nil {
		return m.endErr
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return errors.Wrap(err, "interactive session")
	}
	if fm, ok := final.(model); ok && fm.endErr != nil {
		return fm.endErr
	}
	return nil
}
