package swim_test

import (
	"testing"

	"github.com/padraicbc/swimapi/swim"
)

func TestClassifyEvent(t *testing.T) {
	ec := swim.NewEventClassifier()

	tests := []struct {
		label    string
		stroke   string
		distance int
	}{
		{"11 & 12 age group 200 meter breaststroke", swim.StrokeBreaststroke, 200},
		{"50 meter breaststroke", swim.StrokeBreaststroke, 50},
		{"100 meter backstroke", swim.StrokeBackstroke, 100},
		{"boys 13-14 400 meter freestyle", swim.StrokeFreestyle, 400},
		{"50 Meter Butterfly", swim.StrokeButterfly, 50},
		{"200 meter individual medley", swim.StrokeMedley, 200},
		{"100m butterfly", swim.StrokeButterfly, 0}, // no "meter" marker
		{"open water 5k", "", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		got := ec.Classify(tt.label)
		if got.Stroke != tt.stroke {
			t.Errorf("Classify(%q).Stroke = %q, want %q", tt.label, got.Stroke, tt.stroke)
		}
		if got.Distance != tt.distance {
			t.Errorf("Classify(%q).Distance = %d, want %d", tt.label, got.Distance, tt.distance)
		}
	}
}

func TestClassifyEventFirstMatchWins(t *testing.T) {
	ec := swim.NewEventClassifier()
	// Relay-style labels can mention several strokes; the fixed
	// vocabulary order decides.
	got := ec.Classify("200 meter medley relay (backstroke leg)")
	if got.Stroke != swim.StrokeBackstroke {
		t.Errorf("Stroke = %q, want %q", got.Stroke, swim.StrokeBackstroke)
	}
}
