// Package controls holds the live shader parameters and everything that
// is allowed to change them: the named control table, keyboard bindings
// and the websocket panel. Changes arrive as Commands and are applied on
// the render thread.
package controls

import (
	"fmt"
	gomath "math"

	"fireball/core"
)

// RGB is a color picker value, 0-255 per channel.
type RGB [3]uint8

// Params is the shader parameter set read once per tick.
type Params struct {
	Tesselations   int     `json:"tesselations"`
	BaseColor      RGB     `json:"baseColor"`
	SecondaryColor RGB     `json:"secondaryColor"`
	TertiaryColor  RGB     `json:"tertiaryColor"`
	Persistence    float32 `json:"persistence"`
	Amplitude      float32 `json:"amplitude"`
	Frequency      float32 `json:"frequency"`
	Octaves        int     `json:"octaves"`
}

func DefaultParams() Params {
	return Params{
		Tesselations:   5,
		BaseColor:      RGB{255, 0, 0},
		SecondaryColor: RGB{190, 76, 0},
		TertiaryColor:  RGB{255, 225, 0},
		Persistence:    0.5,
		Amplitude:      0.5,
		Frequency:      2.0,
		Octaves:        6,
	}
}

// Colors converts the three pickers to shader colors.
func (p Params) Colors() (base, secondary, tertiary core.Color) {
	return core.ColorFromRGB8(p.BaseColor),
		core.ColorFromRGB8(p.SecondaryColor),
		core.ColorFromRGB8(p.TertiaryColor)
}

// Clamp forces every numeric control into its range.
func (p *Params) Clamp() {
	for _, c := range Table {
		if !c.Kind.Numeric() {
			continue
		}
		v, _ := p.value(c.Name)
		p.setValue(c, v)
	}
}

// Apply performs cmd against p. It reports whether cmd requests a scene
// reload. Numeric values outside a control's range are clamped; an
// unknown control or a command that does not fit the control's kind is an
// error and leaves p unchanged.
func (p *Params) Apply(cmd Command) (loadScene bool, err error) {
	c, ok := Lookup(cmd.Control)
	if !ok {
		return false, fmt.Errorf("unknown control %q", cmd.Control)
	}

	switch cmd.Kind {
	case SetValue, Adjust:
		if !c.Kind.Numeric() {
			return false, fmt.Errorf("control %q does not take a number", c.Name)
		}
		if gomath.IsNaN(cmd.Value) || gomath.IsInf(cmd.Value, 0) {
			return false, fmt.Errorf("control %q: invalid value %v", c.Name, cmd.Value)
		}
		v := cmd.Value
		if cmd.Kind == Adjust {
			cur, _ := p.value(c.Name)
			v += cur
		}
		p.setValue(c, v)
	case SetColor:
		if c.Kind != KindColor {
			return false, fmt.Errorf("control %q does not take a color", c.Name)
		}
		*p.color(c.Name) = cmd.Color
	case LoadScene:
		if c.Kind != KindAction {
			return false, fmt.Errorf("control %q is not an action", c.Name)
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	return false, nil
}

func (p *Params) value(name string) (float64, bool) {
	switch name {
	case Tesselations:
		return float64(p.Tesselations), true
	case Octaves:
		return float64(p.Octaves), true
	case Persistence:
		return float64(p.Persistence), true
	case Amplitude:
		return float64(p.Amplitude), true
	case Frequency:
		return float64(p.Frequency), true
	}
	return 0, false
}

func (p *Params) setValue(c Control, v float64) {
	v = gomath.Max(c.Min, gomath.Min(c.Max, v))
	switch c.Name {
	case Tesselations:
		p.Tesselations = int(gomath.Round(v))
	case Octaves:
		p.Octaves = int(gomath.Round(v))
	case Persistence:
		p.Persistence = float32(v)
	case Amplitude:
		p.Amplitude = float32(v)
	case Frequency:
		p.Frequency = float32(v)
	}
}

func (p *Params) color(name string) *RGB {
	switch name {
	case BaseColor:
		return &p.BaseColor
	case SecondaryColor:
		return &p.SecondaryColor
	case TertiaryColor:
		return &p.TertiaryColor
	}
	return nil
}
