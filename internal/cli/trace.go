package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sidepin/sidepin/pkg/page"
	"github.com/sidepin/sidepin/pkg/page/sim"
	"github.com/sidepin/sidepin/pkg/sticky"
)

// traceCommand creates the trace command for replaying scenario files.
func (c *CLI) traceCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "trace [scenario.toml]",
		Short: "Replay a scenario file and print the engine's layout decisions",
		Long: `Replay a scenario file and print the engine's layout decisions.

A scenario describes an initial page (viewport, container, element, insets)
and a sequence of mutations: scrolls, resizes, and inset updates. The trace
command replays the scenario against a simulated page, driving the real
controller, and prints one row per step with the committed state, strategy,
translate offset, and applied style.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the trace as JSON")

	return cmd
}

// runTrace loads the scenario, replays it, and renders the trace.
func (c *CLI) runTrace(path string, jsonOut bool) error {
	sc, err := LoadScenario(path)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	rows, err := runScenario(sc)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d steps", len(sc.Steps)))

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if sc.Name != "" {
		fmt.Println(StyleTitle.Render(sc.Name))
		printNewline()
	}
	fmt.Println(renderTraceTable(rows))
	printNewline()
	printSuccess("Trace complete")
	printDetail("%d steps, final state %s", len(sc.Steps), rows[len(rows)-1].State)

	return nil
}

// =============================================================================
// Scenario Replay
// =============================================================================

// TraceRow is the committed engine frame after one scenario step has been
// applied and all pending recomputes drained. Step 0 is the enable pass.
type TraceRow struct {
	Step       int     `json:"step"`
	Label      string  `json:"label,omitempty"`
	ScrollY    float64 `json:"scroll_y"`
	Strategy   string  `json:"strategy"`
	State      string  `json:"state"`
	TranslateY float64 `json:"translate_y"`
	Style      string  `json:"style"`
}

// runScenario builds a simulated page from the scenario, drives a controller
// through every step, and returns one row per step plus the enable pass.
func runScenario(sc *Scenario) ([]TraceRow, error) {
	p := sim.NewPage(sc.Viewport.Width, sc.Viewport.Height)
	container := p.NewBox(nil, sc.Container.Left, sc.Container.Top, sc.Container.Width, sc.Container.Height)
	element := p.NewBox(container, 0, 0, sc.Container.Width, sc.Element.Height)

	ctrl, err := sticky.New(sticky.Options{
		Page:             p,
		Container:        container,
		Element:          element,
		SpaceTop:         sc.Spaces.Top,
		SpaceBottom:      sc.Spaces.Bottom,
		DisabledPosition: sc.DisabledPosition,
	})
	if err != nil {
		return nil, err
	}

	ctrl.Enable()
	drain(p)

	rows := []TraceRow{record(0, "enable", ctrl, element)}

	for i, step := range sc.Steps {
		applyStep(p, ctrl, container, element, step)
		drain(p)
		rows = append(rows, record(i+1, step.Label, ctrl, element))
	}

	return rows, nil
}

// applyStep mutates the simulated page per the step. Geometry changes land
// before inset and scroll changes so a combined step measures consistently.
func applyStep(p *sim.Page, ctrl *sticky.Controller, container, element *sim.Box, step ScenarioStep) {
	if step.ContainerHeight != nil {
		w, _ := container.Size()
		container.Resize(w, *step.ContainerHeight)
	}
	if step.ElementHeight != nil {
		w, _ := element.Size()
		element.Resize(w, *step.ElementHeight)
	}
	if step.ViewportWidth != nil || step.ViewportHeight != nil {
		vw, vh := p.Size()
		if step.ViewportWidth != nil {
			vw = *step.ViewportWidth
		}
		if step.ViewportHeight != nil {
			vh = *step.ViewportHeight
		}
		p.SetViewportSize(vw, vh)
	}
	if step.SpaceTop != nil || step.SpaceBottom != nil {
		// Insets were validated at load time; the update cannot fail.
		_ = ctrl.UpdateSpaces(sticky.SpacesUpdate{Top: step.SpaceTop, Bottom: step.SpaceBottom})
	}
	if step.Scroll != nil {
		x, _ := p.ScrollOffset()
		p.SetScroll(x, *step.Scroll)
	}
	if step.ScrollBy != nil {
		p.ScrollBy(*step.ScrollBy)
	}
}

// drain runs scheduled frame callbacks until none remain.
func drain(p *sim.Page) {
	for p.Step() {
	}
}

// record captures the controller's committed frame and the element's style.
func record(step int, label string, ctrl *sticky.Controller, element *sim.Box) TraceRow {
	f := ctrl.Frame()
	return TraceRow{
		Step:       step,
		Label:      label,
		ScrollY:    f.Snapshot.ScrollY,
		Strategy:   f.Strategy.String(),
		State:      f.State.String(),
		TranslateY: f.TranslateY,
		Style:      element.Style().String(),
	}
}

// =============================================================================
// Rendering
// =============================================================================

// renderTraceTable formats trace rows as a bordered table.
func renderTraceTable(rows []TraceRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		label := r.Label
		if label == "" {
			label = "—"
		}
		data[i] = []string{
			fmt.Sprintf("%d", r.Step),
			label,
			page.Px(r.ScrollY),
			r.Strategy,
			r.State,
			page.Px(r.TranslateY),
			r.Style,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Step", "Scroll", "Strategy", "State", "Translate", "Style").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			switch col {
			case 4:
				return StyleHighlight
			case 6:
				return StyleDim
			default:
				return StyleValue
			}
		})

	return t.Render()
}
