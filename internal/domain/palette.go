package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ARGB hex codes understood by OsmAnd/KML-style map renderers.
const (
	ColorBrown  = "#FF804633"
	ColorBlue   = "#FF249CF2"
	ColorGray   = "#FF737373"
	ColorGreen  = "#FF3C8C3C"
	ColorYellow = "#FFFFC800"

	// Spare codes for future categories.
	ColorOrange = "#FFFF9600"
	ColorPurple = "#FF9B24B2"
)

var colorCodeRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// ColorRule pairs a lowercase keyword with the ARGB color applied to
// waypoints whose name contains it.
type ColorRule struct {
	Keyword string
	Color   string
}

// Palette is an ordered list of color rules. Order matters: the first
// rule whose keyword appears in a name wins, so rules are not required
// to be mutually exclusive.
type Palette []ColorRule

// DefaultPalette returns the built-in keyword table.
func DefaultPalette() Palette {
	return Palette{
		{"camp", ColorBrown},
		{"water", ColorBlue},
		{"creek", ColorBlue},
		{"stream", ColorBlue},
		{"pond", ColorBlue},
		{"pool", ColorBlue},
		{"lake", ColorBlue},
		{"fall", ColorBlue},
		{"trailhead", ColorGray},
		{"parking", ColorGray},
		{"viewpoint", ColorGreen},
		{"peak", ColorGreen},
		{"ranger", ColorYellow},
		{"office", ColorYellow},
		{"restroom", ColorYellow},
	}
}

// Classify returns the color for a waypoint name, or false if no rule
// matches. Matching is case-insensitive and substring-based, not
// word-boundary: a name containing "Carpool" matches the "pool" rule.
// An empty name never matches.
func (p Palette) Classify(name string) (string, bool) {
	rule, ok := p.Match(name)
	if !ok {
		return "", false
	}
	return rule.Color, true
}

// Match returns the first rule whose keyword is a substring of the
// case-folded name.
func (p Palette) Match(name string) (ColorRule, bool) {
	if name == "" {
		return ColorRule{}, false
	}
	lower := strings.ToLower(name)
	for _, rule := range p {
		if strings.Contains(lower, rule.Keyword) {
			return rule, true
		}
	}
	return ColorRule{}, false
}

// Validate checks that every rule has a non-empty lowercase keyword and
// a well-formed #AARRGGBB color code.
func (p Palette) Validate() error {
	for i, rule := range p {
		if rule.Keyword == "" {
			return fmt.Errorf("rule %d: empty keyword", i)
		}
		if rule.Keyword != strings.ToLower(rule.Keyword) {
			return fmt.Errorf("rule %d: keyword %q is not lowercase", i, rule.Keyword)
		}
		if err := ValidateColorCode(rule.Color); err != nil {
			return fmt.Errorf("rule %d (%s): %w", i, rule.Keyword, err)
		}
	}
	return nil
}

// ValidateColorCode checks that a string is an 8-hex-digit ARGB color
// code of the form #AARRGGBB.
func ValidateColorCode(code string) error {
	if !colorCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid ARGB color code: %q", code)
	}
	return nil
}
