package models

import "strings"

// Accent is one of the fixed tile color themes.
type Accent string

const (
	AccentPink     Accent = "pink"
	AccentLavender Accent = "lavender"
	AccentMint     Accent = "mint"
	AccentPeach    Accent = "peach"
	AccentDefault  Accent = "default"
)

// Accents lists the enumerated palette in display order.
var Accents = []Accent{AccentPink, AccentLavender, AccentMint, AccentPeach}

// ParseAccent resolves a configured accent name. Unknown names resolve to
// AccentDefault and ok is false.
func ParseAccent(s string) (Accent, bool) {
	a := Accent(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Accents {
		if a == known {
			return a, true
		}
	}
	return AccentDefault, false
}

// Class is the CSS class applied to a tile with this accent.
func (a Accent) Class() string {
	resolved, _ := ParseAccent(string(a))
	return "accent-" + string(resolved)
}

type Tile struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Href        string `yaml:"href" validate:"required,href"`
	Accent      Accent `yaml:"accent"`
	External    bool   `yaml:"external"`
}

// Hub is always opened in a new browsing context.
type Hub struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Href        string `yaml:"href" validate:"required,http_url"`
}

type StatusState string

const (
	StatusOnline  StatusState = "online"
	StatusOffline StatusState = "offline"
)

type Status struct {
	State StatusState `yaml:"state" validate:"omitempty,oneof=online offline"`
	Text  string      `yaml:"text"`
}

// Label is the explicit text when set, otherwise a default derived from the state.
func (s Status) Label() string {
	if s.Text != "" {
		return s.Text
	}
	if s.Online() {
		return "Online"
	}
	return "Offline"
}

func (s Status) Online() bool {
	return s.State == StatusOnline
}

type Profile struct {
	Title     string `yaml:"title" validate:"required"`
	Subtitle  string `yaml:"subtitle"`
	BrandMark string `yaml:"brand_mark"`
}

type Icon struct {
	Src   string `yaml:"src" json:"src" validate:"required"`
	Sizes string `yaml:"sizes" json:"sizes"`
	Type  string `yaml:"type" json:"type"`
}

// Meta is the document level metadata of the installable web app.
type Meta struct {
	Title           string `yaml:"title" validate:"required"`
	ShortName       string `yaml:"short_name"`
	Description     string `yaml:"description"`
	ThemeColor      string `yaml:"theme_color" validate:"omitempty,hexcolor"`
	BackgroundColor string `yaml:"background_color" validate:"omitempty,hexcolor"`
	StatusBarStyle  string `yaml:"status_bar_style" validate:"omitempty,oneof=default black black-translucent"`
	AppleTouchIcon  string `yaml:"apple_touch_icon"`
	Icons           []Icon `yaml:"icons" validate:"dive"`
}

// Shape is one blurred circle of the decorative background.
type Shape struct {
	Color    string
	Size     int
	Top      int
	Left     int
	Delay    float64
	Duration float64
}

// DefaultShapes are the fixed decorative circles, staggered so no two move in phase.
var DefaultShapes = []Shape{
	{Color: "#f9c6d9", Size: 220, Top: 8, Left: 6, Delay: 0, Duration: 18},
	{Color: "#d8c8f5", Size: 280, Top: 22, Left: 68, Delay: 2.5, Duration: 22},
	{Color: "#c4ecd9", Size: 180, Top: 58, Left: 12, Delay: 5, Duration: 20},
	{Color: "#fbd8c0", Size: 240, Top: 72, Left: 62, Delay: 1.5, Duration: 24},
	{Color: "#cfe3f7", Size: 160, Top: 40, Left: 40, Delay: 4, Duration: 19},
}

type IndexPageData struct {
	Meta    Meta
	Profile Profile
	Tiles   []Tile
	Hub     Hub
	Status  Status
	Shapes  []Shape
	Version string
}

type ErrorPageData struct {
	Meta   Meta
	Status int
}
