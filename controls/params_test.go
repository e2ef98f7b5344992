package controls

import (
	gomath "math"
	"testing"

	"fireball/core"
)

func TestDefaultColors(t *testing.T) {
	base, secondary, tertiary := DefaultParams().Colors()

	if base != (core.Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("base: expected (1,0,0,1), got %v", base)
	}
	if secondary.R != float32(190)/255 || secondary.G != float32(76)/255 || secondary.A != 1 {
		t.Errorf("secondary: unexpected %v", secondary)
	}
	if tertiary.G != float32(225)/255 {
		t.Errorf("tertiary: unexpected %v", tertiary)
	}
}

func TestApplySetValue(t *testing.T) {
	tests := []struct {
		control string
		value   float64
		check   func(p Params) bool
	}{
		{Frequency, 3, func(p Params) bool { return p.Frequency == 3 }},
		{Frequency, 20, func(p Params) bool { return p.Frequency == 10 }},
		{Amplitude, 0, func(p Params) bool { return p.Amplitude == 0.25 }},
		{Persistence, 0.75, func(p Params) bool { return p.Persistence == 0.75 }},
		{Tesselations, 3.6, func(p Params) bool { return p.Tesselations == 4 }},
		{Tesselations, -2, func(p Params) bool { return p.Tesselations == 0 }},
		{Octaves, 99, func(p Params) bool { return p.Octaves == 10 }},
		{Octaves, 0, func(p Params) bool { return p.Octaves == 1 }},
	}

	for _, tt := range tests {
		p := DefaultParams()
		load, err := p.Apply(Command{Kind: SetValue, Control: tt.control, Value: tt.value})
		if err != nil {
			t.Errorf("%s=%v: unexpected error %v", tt.control, tt.value, err)
			continue
		}
		if load {
			t.Errorf("%s=%v: unexpected scene reload", tt.control, tt.value)
		}
		if !tt.check(p) {
			t.Errorf("%s=%v: unexpected params %+v", tt.control, tt.value, p)
		}
	}
}

func TestApplyAdjust(t *testing.T) {
	p := DefaultParams()
	p.Tesselations = 7

	for i := 0; i < 3; i++ {
		if _, err := p.Apply(Command{Kind: Adjust, Control: Tesselations, Value: 1}); err != nil {
			t.Fatal(err)
		}
	}
	if p.Tesselations != 8 {
		t.Errorf("expected level to stop at 8, got %d", p.Tesselations)
	}

	p.Apply(Command{Kind: Adjust, Control: Octaves, Value: -1})
	if p.Octaves != 5 {
		t.Errorf("expected 5 octaves, got %d", p.Octaves)
	}
}

func TestApplyColorAndLoad(t *testing.T) {
	p := DefaultParams()

	if _, err := p.Apply(Command{Kind: SetColor, Control: TertiaryColor, Color: RGB{1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	if p.TertiaryColor != (RGB{1, 2, 3}) {
		t.Errorf("expected tertiary color updated, got %v", p.TertiaryColor)
	}

	load, err := p.Apply(Command{Kind: LoadScene, Control: LoadSceneName})
	if err != nil || !load {
		t.Errorf("expected Load Scene to request a reload, got %v, %v", load, err)
	}
}

func TestApplyRejects(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"unknown control", Command{Kind: SetValue, Control: "Speed", Value: 1}},
		{"color as number", Command{Kind: SetValue, Control: BaseColor, Value: 1}},
		{"number as color", Command{Kind: SetColor, Control: Frequency, Color: RGB{1, 1, 1}}},
		{"load on slider", Command{Kind: LoadScene, Control: Octaves}},
		{"NaN", Command{Kind: SetValue, Control: Frequency, Value: gomath.NaN()}},
		{"infinity", Command{Kind: SetValue, Control: Frequency, Value: gomath.Inf(1)}},
	}

	for _, tt := range tests {
		p := DefaultParams()
		if _, err := p.Apply(tt.cmd); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if p != DefaultParams() {
			t.Errorf("%s: params changed on error: %+v", tt.name, p)
		}
	}
}

func TestClamp(t *testing.T) {
	p := Params{Tesselations: 12, Octaves: 0, Amplitude: 0, Persistence: 2, Frequency: -1}
	p.Clamp()

	want := Params{Tesselations: 8, Octaves: 1, Amplitude: 0.25, Persistence: 1, Frequency: 0}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}

	d := DefaultParams()
	d.Clamp()
	if d != DefaultParams() {
		t.Errorf("defaults should already be in range, got %+v", d)
	}
}

func TestTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Table {
		if seen[c.Name] {
			t.Errorf("duplicate control %q", c.Name)
		}
		seen[c.Name] = true
		if c.Kind.Numeric() && c.Min >= c.Max {
			t.Errorf("%s: empty range [%v, %v]", c.Name, c.Min, c.Max)
		}
	}

	if c, ok := Lookup(Tesselations); !ok || c.Max != 8 || c.Step != 1 {
		t.Errorf("unexpected Tesselations control %+v", c)
	}
	if _, ok := Lookup("tesselations"); ok {
		t.Error("lookup should be case sensitive")
	}
}
