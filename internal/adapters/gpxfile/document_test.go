package gpxfile

import (
	"strings"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="gpxcolor-test">
  <metadata>
    <name>Test Area</name>
  </metadata>
  <wpt lat="44.1" lon="-110.5">
    <name>Trailhead Parking</name>
  </wpt>
  <wpt lat="44.2" lon="-110.6">
    <name>Granite Peak</name>
  </wpt>
  <wpt lat="44.3" lon="-110.7">
    <name>Bob's House</name>
  </wpt>
  <trk>
    <name>Loop</name>
    <trkseg>
      <trkpt lat="44.1" lon="-110.5"/>
    </trkseg>
  </trk>
</gpx>
`

func parseSample(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParse_Waypoints(t *testing.T) {
	doc := parseSample(t, sampleGPX)

	wpts := doc.Waypoints()
	if len(wpts) != 3 {
		t.Fatalf("expected 3 waypoints, got %d", len(wpts))
	}

	want := []string{"Trailhead Parking", "Granite Peak", "Bob's House"}
	for i, wpt := range wpts {
		if got := WaypointName(wpt); got != want[i] {
			t.Errorf("waypoint %d name = %q, want %q", i, got, want[i])
		}
	}
}

func TestParse_RootAttributes(t *testing.T) {
	doc := parseSample(t, sampleGPX)

	if doc.Creator() != "gpxcolor-test" {
		t.Errorf("creator = %q", doc.Creator())
	}
	if doc.Version() != "1.1" {
		t.Errorf("version = %q", doc.Version())
	}
	if doc.CountElements(trackTag) != 1 {
		t.Errorf("expected 1 track, got %d", doc.CountElements(trackTag))
	}
}

func TestWaypointName_MissingAndEmpty(t *testing.T) {
	src := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="1" lon="2"/>
  <wpt lat="3" lon="4"><name></name></wpt>
</gpx>`
	doc := parseSample(t, src)

	for i, wpt := range doc.Waypoints() {
		if name := WaypointName(wpt); name != "" {
			t.Errorf("waypoint %d: expected empty name, got %q", i, name)
		}
	}
}

func TestParse_PrefixedNamespace(t *testing.T) {
	src := `<g:gpx xmlns:g="http://www.topografix.com/GPX/1/1" version="1.1" creator="prefixed">
  <g:wpt lat="44.1" lon="-110.5"><g:name>Mirror Lake</g:name></g:wpt>
  <g:trk><g:name>Loop</g:name></g:trk>
</g:gpx>`
	doc := parseSample(t, src)

	wpts := doc.Waypoints()
	if len(wpts) != 1 {
		t.Fatalf("expected 1 waypoint in prefixed document, got %d", len(wpts))
	}
	if got := WaypointName(wpts[0]); got != "Mirror Lake" {
		t.Errorf("waypoint name = %q, want %q", got, "Mirror Lake")
	}
	if doc.CountElements(trackTag) != 1 {
		t.Errorf("expected 1 track, got %d", doc.CountElements(trackTag))
	}
}

func TestWaypoints_SkipsForeignNamespace(t *testing.T) {
	src := `<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="1" lon="2"><name>Mirror Lake</name></wpt>
  <x:wpt xmlns:x="http://example.com/not-gpx" lat="3" lon="4"><x:name>Fake Lake</x:name></x:wpt>
</gpx>`
	doc := parseSample(t, src)

	wpts := doc.Waypoints()
	if len(wpts) != 1 {
		t.Fatalf("expected the foreign-namespace wpt to be skipped, got %d waypoints", len(wpts))
	}
	if got := WaypointName(wpts[0]); got != "Mirror Lake" {
		t.Errorf("waypoint name = %q", got)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed element", `<gpx><wpt>`},
		{"not xml at all", `hello, world`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Error("expected a parse error")
			}
		})
	}
}

func TestWriteTo_AddsDeclarationWhenMissing(t *testing.T) {
	src := `<gpx xmlns="http://www.topografix.com/GPX/1/1"><wpt lat="1" lon="2"><name>Lake</name></wpt></gpx>`
	doc := parseSample(t, src)

	out, err := doc.String()
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output missing XML declaration: %q", out[:min(len(out), 60)])
	}
}

func TestWriteTo_KeepsExistingDeclaration(t *testing.T) {
	doc := parseSample(t, sampleGPX)

	out, err := doc.String()
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if strings.Count(out, "<?xml") != 1 {
		t.Errorf("expected exactly one XML declaration:\n%s", out)
	}
	if !strings.Contains(out, `xmlns="http://www.topografix.com/GPX/1/1"`) {
		t.Error("namespace declaration not preserved")
	}
}
