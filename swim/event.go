package swim

import (
	"regexp"
	"strconv"
	"strings"
)

// Stroke families, in classification priority order.
const (
	StrokeBreaststroke = "breaststroke"
	StrokeBackstroke   = "backstroke"
	StrokeFreestyle    = "freestyle"
	StrokeButterfly    = "butterfly"
	StrokeMedley       = "medley"
)

// strokeOrder is the fixed classification vocabulary; first substring
// match wins.
var strokeOrder = []string{
	StrokeBreaststroke,
	StrokeBackstroke,
	StrokeFreestyle,
	StrokeButterfly,
	StrokeMedley,
}

// FamilyStrokes are the four families reported in per-swimmer family
// breakdowns. Medley is classified but not broken out.
var FamilyStrokes = []string{
	StrokeBreaststroke,
	StrokeBackstroke,
	StrokeFreestyle,
	StrokeButterfly,
}

// EventInfo is the parsed shape of a free-text event label. Stroke is
// empty and Distance zero when the label does not match.
type EventInfo struct {
	Stroke   string `json:"stroke,omitempty"`
	Distance int    `json:"distance,omitempty"`
}

// EventClassifier extracts stroke family and distance from event
// labels like "11 & 12 age group 200 meter breaststroke". Built once
// at startup and injected.
type EventClassifier struct {
	strokes  []string
	distance *regexp.Regexp
}

// NewEventClassifier builds a classifier over the fixed stroke
// vocabulary.
func NewEventClassifier() *EventClassifier {
	return &EventClassifier{
		strokes:  strokeOrder,
		distance: regexp.MustCompile(`(?i)(\d+)\s*meter`),
	}
}

// Classify parses an event label. Unmatched stroke or distance yields
// the zero value for that field rather than an error.
func (ec *EventClassifier) Classify(label string) EventInfo {
	var info EventInfo
	if label == "" {
		return info
	}

	lower := strings.ToLower(label)
	for _, st := range ec.strokes {
		if strings.Contains(lower, st) {
			info.Stroke = st
			break
		}
	}

	if m := ec.distance.FindStringSubmatch(label); m != nil {
		if d, err := strconv.Atoi(m[1]); err == nil {
			info.Distance = d
		}
	}
	return info
}
