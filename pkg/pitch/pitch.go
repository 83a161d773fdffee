// Package pitch holds the static pitch-type metadata shared by the dataset
// views and the chart renderer: codes, display names, colours and the
// canonical axis order.
package pitch

// Type is a known pitch-type code. Codes outside the known set parse to
// Unrecognized and keep their raw text at the call site.
type Type int

const (
	Unrecognized Type = iota
	All
	FourSeam
	Fastball
	Sinker
	Cutter
	Changeup
	Splitter
	Screwball
	Forkball
	Slider
	Sweeper
	Slurve
	KnuckleCurve
	Curveball
	SlowCurve
	Eephus
	Knuckleball
	PitchOut
	Unknown
)

// UnknownColour is used for codes outside the lookup.
const UnknownColour = "#9C8975"

type info struct {
	code   string
	name   string
	colour string
}

var table = [...]info{
	Unrecognized: {"", "", UnknownColour},
	All:          {"All", "All", "#808080"},
	FourSeam:     {"FF", "4-Seam Fastball", "#FF007D"},
	Fastball:     {"FA", "Fastball", "#FF007D"},
	Sinker:       {"SI", "Sinker", "#98165D"},
	Cutter:       {"FC", "Cutter", "#BE5FA0"},
	Changeup:     {"CH", "Changeup", "#F79E70"},
	Splitter:     {"FS", "Splitter", "#FE6100"},
	Screwball:    {"SC", "Screwball", "#F08223"},
	Forkball:     {"FO", "Forkball", "#FFB000"},
	Slider:       {"SL", "Slider", "#67E18D"},
	Sweeper:      {"ST", "Sweeper", "#1BB999"},
	Slurve:       {"SV", "Slurve", "#376748"},
	KnuckleCurve: {"KC", "Knuckle Curve", "#311D8B"},
	Curveball:    {"CU", "Curveball", "#3025CE"},
	SlowCurve:    {"CS", "Slow Curve", "#274BFC"},
	Eephus:       {"EP", "Eephus", "#648FFF"},
	Knuckleball:  {"KN", "Knuckleball", "#867A08"},
	PitchOut:     {"PO", "Pitch Out", "#472C30"},
	Unknown:      {"UN", "Unknown", UnknownColour},
}

// canonical is the fixed horizontal order of pitch types on every chart.
var canonical = []Type{
	All, FourSeam, Sinker, Cutter, Changeup, Splitter, Forkball, Screwball,
	Slider, Sweeper, Slurve, Curveball, KnuckleCurve, Knuckleball,
}

var (
	byCode = make(map[string]Type, len(table))
	byName = make(map[string]Type, len(table))
	rank   = make(map[string]int, len(canonical))
)

func init() {
	for t := All; t <= Unknown; t++ {
		byCode[table[t].code] = t
		byName[table[t].name] = t
	}
	for i, t := range canonical {
		rank[table[t].code] = i
	}
}

// Parse maps a code to its Type, or Unrecognized.
func Parse(code string) Type {
	if t, ok := byCode[code]; ok {
		return t
	}
	return Unrecognized
}

func (t Type) valid() bool { return t > Unrecognized && t <= Unknown }

// Code returns the short code, or "" for Unrecognized.
func (t Type) Code() string {
	if !t.valid() {
		return ""
	}
	return table[t].code
}

// Name returns the display name, or "" for Unrecognized.
func (t Type) Name() string {
	if !t.valid() {
		return ""
	}
	return table[t].name
}

// Colour returns the hex display colour.
func (t Type) Colour() string {
	if !t.valid() {
		return UnknownColour
	}
	return table[t].colour
}

func (t Type) String() string {
	if !t.valid() {
		return "unrecognized"
	}
	return table[t].code
}

// NameOf returns the display name for code; unknown codes pass through unchanged.
func NameOf(code string) string {
	if t := Parse(code); t != Unrecognized {
		return t.Name()
	}
	return code
}

// ColourOf returns the display colour for code.
func ColourOf(code string) string { return Parse(code).Colour() }

// CodeForName resolves a display name ("Slider") to its code ("SL").
func CodeForName(name string) (string, bool) {
	t, ok := byName[name]
	if !ok {
		return "", false
	}
	return t.Code(), true
}

// Resolve turns a selector into a code. Display names resolve through the
// name lookup; anything else is taken to be a code already.
func Resolve(selector string) string {
	if code, ok := CodeForName(selector); ok {
		return code
	}
	return selector
}

// CanonicalOrder returns a copy of the canonical pitch-type codes.
func CanonicalOrder() []string {
	out := make([]string, len(canonical))
	for i, t := range canonical {
		out[i] = t.Code()
	}
	return out
}

// Rank returns the position of code in the canonical order.
func Rank(code string) (int, bool) {
	i, ok := rank[code]
	return i, ok
}

// Known lists every known type in declaration order.
func Known() []Type {
	out := make([]Type, 0, int(Unknown))
	for t := All; t <= Unknown; t++ {
		out = append(out, t)
	}
	return out
}
