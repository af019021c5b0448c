package gpxfile

import (
	"github.com/beevik/etree"

	"gpxcolor/internal/domain"
)

// Annotate walks every waypoint in document order and injects a color
// extension into those whose name matches a palette rule. Returns one
// match record per annotated waypoint; unmatched and unnamed waypoints
// are left untouched. A new extension subtree is always appended, even
// when a prior one exists, so re-running on an already-colored file
// accumulates extensions.
func Annotate(doc *Document, palette domain.Palette) []domain.WaypointMatch {
	var matches []domain.WaypointMatch
	for _, wpt := range doc.Waypoints() {
		rule, ok := palette.Match(WaypointName(wpt))
		if !ok {
			continue
		}
		addColorExtension(wpt, rule.Color)
		matches = append(matches, domain.WaypointMatch{
			Name:    WaypointName(wpt),
			Keyword: rule.Keyword,
			Color:   rule.Color,
		})
	}
	return matches
}

// Classify reports which waypoints would be annotated, without
// touching the tree.
func Classify(doc *Document, palette domain.Palette) []domain.WaypointMatch {
	var matches []domain.WaypointMatch
	for _, wpt := range doc.Waypoints() {
		rule, ok := palette.Match(WaypointName(wpt))
		if !ok {
			continue
		}
		matches = append(matches, domain.WaypointMatch{
			Name:    WaypointName(wpt),
			Keyword: rule.Keyword,
			Color:   rule.Color,
		})
	}
	return matches
}

// addColorExtension grows (or creates) the waypoint's extensions node
// with a gpx element holding a single color child:
//
//	<extensions><gpx><color>#AARRGGBB</color></gpx></extensions>
//
// New elements carry the waypoint's own namespace prefix, so they stay
// in the GPX namespace for default-namespace and prefixed documents
// alike.
func addColorExtension(wpt *etree.Element, color string) {
	extensions := findChild(wpt, extensionsTag)
	if extensions == nil {
		extensions = createChild(wpt, extensionsTag)
	}
	vendor := createChild(extensions, vendorTag)
	createChild(vendor, colorTag).SetText(color)
}
