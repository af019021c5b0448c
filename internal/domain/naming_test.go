package domain

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain gpx file",
			input: "hike.gpx",
			want:  "hike_color.gpx",
		},
		{
			name:  "nested path",
			input: "/tracks/2026/hike.gpx",
			want:  "/tracks/2026/hike_color.gpx",
		},
		{
			name:  "uppercase extension preserved",
			input: "hike.GPX",
			want:  "hike_color.GPX",
		},
		{
			name:  "no extension",
			input: "track",
			want:  "track_color",
		},
		{
			name:  "dot in directory name",
			input: "trips.2026/hike.gpx",
			want:  "trips.2026/hike_color.gpx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(""); got != UnnamedWaypoint {
		t.Errorf("expected %q for empty name, got %q", UnnamedWaypoint, got)
	}
	if got := DisplayName("Granite Peak"); got != "Granite Peak" {
		t.Errorf("expected name passed through, got %q", got)
	}
}
