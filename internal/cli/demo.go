package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sidepin/sidepin/pkg/page"
	"github.com/sidepin/sidepin/pkg/page/sim"
	"github.com/sidepin/sidepin/pkg/sticky"
)

// demoCommand creates the demo command for interactively driving the engine.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		containerHeight float64
		elementHeight   float64
		viewportHeight  float64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drive the engine interactively against a simulated page",
		Long: `Drive the engine interactively against a simulated page.

The demo opens a terminal view of a simulated document: a bounding container,
a managed element, and a scrollable viewport. Scroll and resize keys mutate
the page while the real controller recomputes on every frame, so the state
machine's decisions are visible live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newDemoModel(containerHeight, elementHeight, viewportHeight)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&containerHeight, "container-height", 3000, "container height in document pixels")
	cmd.Flags().Float64Var(&elementHeight, "element-height", 900, "managed element height in document pixels")
	cmd.Flags().Float64Var(&viewportHeight, "viewport-height", 600, "simulated viewport height in document pixels")

	return cmd
}

// Demo styles
var (
	demoPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	demoContainerStyle = lipgloss.NewStyle().Foreground(colorGray)
	demoElementStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	demoBandStyle      = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	demoScrollStep = 40
	demoScrollPage = 400
	demoSizeStep   = 100
	demoGaugeRows  = 24
)

// =============================================================================
// demoModel - Interactive Engine Demo
// =============================================================================

// demoModel is the bubbletea model wrapping a simulated page and a live
// controller. All mutations go through the page; the controller reacts the
// same way it would to real scroll and resize events.
type demoModel struct {
	page      *sim.Page
	container *sim.Box
	element   *sim.Box
	ctrl      *sticky.Controller

	containerTop float64
	docHeight    float64
	spacesOn     bool
}

// newDemoModel builds the simulated page and an enabled controller.
func newDemoModel(containerHeight, elementHeight, viewportHeight float64) (demoModel, error) {
	const containerTop = 200

	p := sim.NewPage(800, viewportHeight)
	container := p.NewBox(nil, 100, containerTop, 300, containerHeight)
	element := p.NewBox(container, 0, 0, 300, elementHeight)

	ctrl, err := sticky.New(sticky.Options{
		Page:      p,
		Container: container,
		Element:   element,
	})
	if err != nil {
		return demoModel{}, err
	}

	m := demoModel{
		page:         p,
		container:    container,
		element:      element,
		ctrl:         ctrl,
		containerTop: containerTop,
		docHeight:    containerTop + containerHeight + 400,
	}
	ctrl.Enable()
	m.drain()
	return m, nil
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "down", "j":
		m.scrollBy(demoScrollStep)
	case "up", "k":
		m.scrollBy(-demoScrollStep)
	case "pgdown", "J":
		m.scrollBy(demoScrollPage)
	case "pgup", "K":
		m.scrollBy(-demoScrollPage)
	case "g":
		m.scrollTo(0)
	case "G":
		_, vh := m.page.Size()
		m.scrollTo(m.docHeight - vh)

	case "+", "=":
		m.resizeElement(demoSizeStep)
	case "-", "_":
		m.resizeElement(-demoSizeStep)

	case "t":
		m.toggleSpaces()

	case "e":
		if m.ctrl.Enabled() {
			m.ctrl.Disable()
		} else {
			m.ctrl.Enable()
		}
		m.drain()
	}

	return m, nil
}

func (m *demoModel) scrollBy(dy float64) {
	_, y := m.page.ScrollOffset()
	m.scrollTo(y + dy)
}

func (m *demoModel) scrollTo(y float64) {
	_, vh := m.page.Size()
	if limit := m.docHeight - vh; y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	x, _ := m.page.ScrollOffset()
	m.page.SetScroll(x, y)
	m.drain()
}

func (m *demoModel) resizeElement(dh float64) {
	w, h := m.element.Size()
	h += dh
	if h < demoSizeStep {
		h = demoSizeStep
	}
	m.element.Resize(w, h)
	m.drain()
}

func (m *demoModel) toggleSpaces() {
	top, bottom := 0.0, 0.0
	if !m.spacesOn {
		top, bottom = 64, 32
	}
	m.spacesOn = !m.spacesOn
	_ = m.ctrl.UpdateSpaces(sticky.SpacesUpdate{Top: &top, Bottom: &bottom})
	m.drain()
}

// drain runs scheduled frame callbacks until the page is quiet.
func (m *demoModel) drain() {
	for m.page.Step() {
	}
}

// =============================================================================
// View
// =============================================================================

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("sidepin demo"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("j/k scroll  J/K page  g/G ends  +/- element height  t insets  e toggle  q quit"))
	b.WriteString("\n\n")

	gauge := demoPaneStyle.Render(m.renderGauge())
	status := demoPaneStyle.Render(m.renderStatus())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gauge, " ", status))

	return b.String()
}

// renderStatus formats the committed frame as key-value lines.
func (m demoModel) renderStatus() string {
	f := m.ctrl.Frame()
	_, eh := m.element.Size()
	_, y := m.page.ScrollOffset()

	lines := []struct {
		key   string
		value string
	}{
		{"enabled", fmt.Sprintf("%v", m.ctrl.Enabled())},
		{"scroll", page.Px(y)},
		{"strategy", f.Strategy.String()},
		{"state", f.State.String()},
		{"translate", page.Px(f.TranslateY)},
		{"element", page.Px(eh)},
		{"band", page.Px(f.Snapshot.ColliderHeight)},
		{"style", m.element.Style().String()},
		{"container", m.container.Position()},
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(keyStyle.Render(l.key))
		b.WriteString(StyleValue.Render(l.value))
	}
	return b.String()
}

// renderGauge draws the visible slice of the document as one character row
// per document band: container extent, managed element extent, and the inset
// boundaries of the visible band.
func (m demoModel) renderGauge() string {
	_, vh := m.page.Size()
	_, y := m.page.ScrollOffset()
	_, eh := m.element.Size()
	_, ch := m.container.Size()
	spaces := m.ctrl.Spaces()

	elTop := m.elementDocTop()
	rowH := vh / demoGaugeRows

	var b strings.Builder
	for row := 0; row < demoGaugeRows; row++ {
		docTop := y + float64(row)*rowH
		docBottom := docTop + rowH

		cell := StyleDim.Render("·")
		switch {
		case elTop < docBottom && elTop+eh > docTop:
			cell = demoElementStyle.Render("█")
		case m.containerTop < docBottom && m.containerTop+ch > docTop:
			cell = demoContainerStyle.Render("│")
		}

		marker := " "
		bandTop := y + spaces.Top
		bandBottom := y + vh - spaces.Bottom
		if bandTop >= docTop && bandTop < docBottom {
			marker = demoBandStyle.Render("┬")
		} else if bandBottom > docTop && bandBottom <= docBottom {
			marker = demoBandStyle.Render("┴")
		}

		if row > 0 {
			b.WriteString("\n")
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(cell)
	}
	return b.String()
}

// elementDocTop derives the element's document-space top edge from the
// committed state. Fixed states anchor to the viewport band; sliding and
// container-bottom states offset within the container.
func (m demoModel) elementDocTop() float64 {
	f := m.ctrl.Frame()
	_, eh := m.element.Size()

	switch f.State {
	case sticky.StateColliderTop:
		return f.Snapshot.ColliderTop
	case sticky.StateColliderBottom:
		return f.Snapshot.ColliderTop + f.Snapshot.ColliderHeight - eh
	case sticky.StateTranslate:
		return m.containerTop + f.TranslateY
	case sticky.StateContainerBottom:
		_, ch := m.container.Size()
		return m.containerTop + ch - eh
	default:
		return m.containerTop
	}
}
