package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sidepin/sidepin/pkg/errors"
)

// =============================================================================
// Scenario - Declarative Trace Input
// =============================================================================

// Scenario describes a reproducible page setup plus an ordered sequence of
// mutations to replay against the engine. Scenarios are stored as TOML files
// and consumed by the trace command.
type Scenario struct {
	// Name labels the scenario in trace output. Optional.
	Name string `toml:"name"`

	// DisabledPosition overrides the baseline position property applied when
	// no sticky state is active. Optional.
	DisabledPosition string `toml:"disabled_position"`

	Viewport  ScenarioViewport `toml:"viewport"`
	Container ScenarioBox      `toml:"container"`
	Element   ScenarioElement  `toml:"element"`
	Spaces    ScenarioSpaces   `toml:"spaces"`

	// Steps are replayed in order after the initial enable pass.
	Steps []ScenarioStep `toml:"steps"`
}

// ScenarioViewport is the initial viewport geometry.
type ScenarioViewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// ScenarioBox is the initial container geometry in document coordinates.
type ScenarioBox struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// ScenarioElement is the initial managed element geometry. The element's
// width follows the container.
type ScenarioElement struct {
	Height float64 `toml:"height"`
}

// ScenarioSpaces are the initial viewport insets.
type ScenarioSpaces struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// ScenarioStep is one page mutation. Exactly the set fields are applied; at
// least one field must be set. Pointer fields distinguish "absent" from zero.
type ScenarioStep struct {
	// Label annotates the step in trace output. Optional.
	Label string `toml:"label"`

	// Scroll sets the absolute vertical scroll offset.
	Scroll *float64 `toml:"scroll"`

	// ScrollBy adjusts the vertical scroll offset by a delta.
	ScrollBy *float64 `toml:"scroll_by"`

	// ElementHeight resizes the managed element.
	ElementHeight *float64 `toml:"element_height"`

	// ContainerHeight resizes the container.
	ContainerHeight *float64 `toml:"container_height"`

	// ViewportWidth and ViewportHeight resize the viewport.
	ViewportWidth  *float64 `toml:"viewport_width"`
	ViewportHeight *float64 `toml:"viewport_height"`

	// SpaceTop and SpaceBottom update the viewport insets.
	SpaceTop    *float64 `toml:"space_top"`
	SpaceBottom *float64 `toml:"space_bottom"`
}

// mutates reports whether the step carries at least one mutation.
func (s ScenarioStep) mutates() bool {
	return s.Scroll != nil || s.ScrollBy != nil ||
		s.ElementHeight != nil || s.ContainerHeight != nil ||
		s.ViewportWidth != nil || s.ViewportHeight != nil ||
		s.SpaceTop != nil || s.SpaceBottom != nil
}

// =============================================================================
// Loading
// =============================================================================

// LoadScenario reads and validates a scenario TOML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "scenario file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read scenario %s", path)
	}

	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "parse scenario %s", path)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario geometry and every step.
func (sc *Scenario) Validate() error {
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScenario,
			"viewport must have positive width and height, got %vx%v", sc.Viewport.Width, sc.Viewport.Height)
	}
	if err := errors.ValidateCoordinate("container.left", sc.Container.Left); err != nil {
		return err
	}
	if err := errors.ValidateCoordinate("container.top", sc.Container.Top); err != nil {
		return err
	}
	if err := errors.ValidateLength("container.width", sc.Container.Width); err != nil {
		return err
	}
	if err := errors.ValidateLength("container.height", sc.Container.Height); err != nil {
		return err
	}
	if err := errors.ValidateLength("element.height", sc.Element.Height); err != nil {
		return err
	}
	if err := errors.ValidateSpaces(sc.Spaces.Top, sc.Spaces.Bottom); err != nil {
		return err
	}

	for i, step := range sc.Steps {
		if !step.mutates() {
			return errors.New(errors.ErrCodeInvalidScenario, "step %d mutates nothing", i+1)
		}
		if step.Scroll != nil && step.ScrollBy != nil {
			return errors.New(errors.ErrCodeInvalidScenario, "step %d sets both scroll and scroll_by", i+1)
		}
		for name, v := range map[string]*float64{
			"element_height":   step.ElementHeight,
			"container_height": step.ContainerHeight,
			"viewport_width":   step.ViewportWidth,
			"viewport_height":  step.ViewportHeight,
			"space_top":        step.SpaceTop,
			"space_bottom":     step.SpaceBottom,
		} {
			if v == nil {
				continue
			}
			if err := errors.ValidateLength(name, *v); err != nil {
				return err
			}
		}
		if step.Scroll != nil {
			if err := errors.ValidateCoordinate("scroll", *step.Scroll); err != nil {
				return err
			}
		}
		if step.ScrollBy != nil {
			if err := errors.ValidateCoordinate("scroll_by", *step.ScrollBy); err != nil {
				return err
			}
		}
	}
	return nil
}
