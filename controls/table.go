package controls

// Control names as shown on the panel.
const (
	Tesselations   = "Tesselations"
	BaseColor      = "BaseColor"
	SecondaryColor = "SecondaryColor"
	TertiaryColor  = "TertiaryColor"
	Persistence    = "Persistence"
	Amplitude      = "Amplitude"
	Frequency      = "Frequency"
	Octaves        = "Octaves"
	LoadSceneName  = "Load Scene"
)

type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindColor  Kind = "color"
	KindAction Kind = "action"
)

func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Control describes one panel entry. Step is zero for continuous sliders.
type Control struct {
	Name string  `json:"name"`
	Kind Kind    `json:"kind"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
	Step float64 `json:"step,omitempty"`
}

// Table lists every control in panel order.
var Table = []Control{
	{Name: Tesselations, Kind: KindInt, Min: 0, Max: 8, Step: 1},
	{Name: BaseColor, Kind: KindColor},
	{Name: SecondaryColor, Kind: KindColor},
	{Name: TertiaryColor, Kind: KindColor},
	{Name: Persistence, Kind: KindFloat, Min: 0, Max: 1},
	{Name: Amplitude, Kind: KindFloat, Min: 0.25, Max: 1},
	{Name: Frequency, Kind: KindFloat, Min: 0, Max: 10},
	{Name: Octaves, Kind: KindInt, Min: 1, Max: 10, Step: 1},
	{Name: LoadSceneName, Kind: KindAction},
}

func Lookup(name string) (Control, bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}
