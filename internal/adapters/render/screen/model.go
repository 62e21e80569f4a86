package screen

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// Page is one renderable screen of the client.
type Page interface {
	render(opts RenderOptions, s styles) string
}

type renderReadyMsg struct{}

type model struct {
	page   Page
	opts   RenderOptions
	styles styles
	output string
}

func newModel(page Page, opts RenderOptions) model {
	return model{
		page:   page,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.page.render(m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(page Page, opts RenderOptions) (string, error) {
	if page == nil {
		return "", errors.New("page is required")
	}

	p := tea.NewProgram(
		newModel(page, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
