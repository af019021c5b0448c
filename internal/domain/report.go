package domain

// UnnamedWaypoint is the display label for waypoints with a missing or
// empty name element. Such waypoints are never colored.
const UnnamedWaypoint = "[Unnamed Waypoint]"

// DisplayName returns the name to show for a waypoint in reports.
func DisplayName(name string) string {
	if name == "" {
		return UnnamedWaypoint
	}
	return name
}

// WaypointMatch records one waypoint that matched a color rule.
type WaypointMatch struct {
	Name    string // waypoint display name as found in the document
	Keyword string // the rule keyword that matched
	Color   string // ARGB code applied
}

// ColorizeReport summarizes one colorize or preview run.
type ColorizeReport struct {
	InputPath  string
	OutputPath string // empty for preview runs
	Waypoints  int    // total waypoints seen
	Processed  int    // waypoints that received a color annotation
	Matches    []WaypointMatch
}

// DocumentInfo describes a GPX file without modifying it.
type DocumentInfo struct {
	Path      string
	Creator   string
	Version   string
	Waypoints int
	Tracks    int
	Routes    int
}
