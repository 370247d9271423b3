package camera

import "testing"

func TestParseDevice(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"0", 0},
		{"2", 2},
		{"-1", -1},
		{"testdata/clip.mp4", "testdata/clip.mp4"},
		{"/dev/video0", "/dev/video0"},
	}
	for _, tt := range tests {
		if got := parseDevice(tt.in); got != tt.want {
			t.Errorf("parseDevice(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
