package swim

import "sort"

// PersonalBest is the single fastest eligible result for one swimmer
// and event.
type PersonalBest struct {
	Seconds float64 `json:"pbSeconds"`
	Meet    string  `json:"pbMeet"`
	Year    string  `json:"pbYear"`
}

// BestOptions tunes personal-best selection.
type BestOptions struct {
	// IncludeShortCourse keeps winter short-course meets in
	// consideration. Off by default: their times are non-comparable.
	IncludeShortCourse bool
	// MinYear/MaxYear bound eligible rows inclusively when non-empty.
	MinYear string
	MaxYear string
}

// BestResult scans records for one swimmer+event and returns the
// minimum valid time, or nil when no record is eligible. Ties on time
// go to the earliest year; a tie on year keeps the first row scanned.
func BestResult(records []Record, opts BestOptions) *PersonalBest {
	var best *PersonalBest
	for _, r := range records {
		sec, ok := r.Seconds()
		if !ok {
			continue
		}
		if !opts.IncludeShortCourse && IsShortCourseWinter(r.Meet) {
			continue
		}
		if opts.MinYear != "" && r.Year < opts.MinYear {
			continue
		}
		if opts.MaxYear != "" && r.Year > opts.MaxYear {
			continue
		}
		if best == nil || sec < best.Seconds || (sec == best.Seconds && r.Year < best.Year) {
			best = &PersonalBest{Seconds: sec, Meet: r.Meet, Year: r.Year}
		}
	}
	return best
}

// Stats are count/average figures over every valid time, including
// short-course rows. A nil Avg means no record parsed.
type Stats struct {
	Count int      `json:"meetCount"`
	Avg   *float64 `json:"avgSeconds"`
}

// Reduce computes count and average across all valid times in records.
// Unlike BestResult it does not apply the short-course exclusion:
// excluded meets still count toward participation and averages.
func Reduce(records []Record) Stats {
	var sum float64
	var n int
	for _, r := range records {
		sec, ok := r.Seconds()
		if !ok {
			continue
		}
		sum += sec
		n++
	}
	st := Stats{Count: n}
	if n > 0 {
		avg := sum / float64(n)
		st.Avg = &avg
	}
	return st
}

// TrendPoint is one (year, seconds) sample in a best-per-year series.
type TrendPoint struct {
	Year    string  `json:"year"`
	Seconds float64 `json:"seconds"`
}

// BestByYear reduces records to the fastest valid time per year,
// sorted ascending by year. Short-course rows are included: trends
// chart everything the swimmer actually swam.
func BestByYear(records []Record) []TrendPoint {
	best := map[string]float64{}
	for _, r := range records {
		sec, ok := r.Seconds()
		if !ok {
			continue
		}
		if cur, seen := best[r.Year]; !seen || sec < cur {
			best[r.Year] = sec
		}
	}

	points := make([]TrendPoint, 0, len(best))
	for y, s := range best {
		points = append(points, TrendPoint{Year: y, Seconds: s})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// FamilyStats summarizes one stroke family for a swimmer across all
// distances.
type FamilyStats struct {
	Count     int      `json:"count"`
	MostDist  *int     `json:"mostDist"`
	MostCount *int     `json:"mostCount"`
	PBSeconds *float64 `json:"pbSeconds"`
}

// FamilyBreakdown groups a swimmer's valid results by stroke family
// and reports per-family counts, the most-swum distance and the
// fastest time. Every stroke in FamilyStrokes is present in the
// output, zero-valued when the swimmer never swam it.
func FamilyBreakdown(records []Record, ec *EventClassifier) map[string]FamilyStats {
	type agg struct {
		count int
		min   float64
		dists map[int]int
	}
	byStroke := map[string]*agg{}

	for _, r := range records {
		sec, ok := r.Seconds()
		if !ok {
			continue
		}
		info := ec.Classify(r.Event)
		if info.Stroke == "" {
			continue
		}
		a := byStroke[info.Stroke]
		if a == nil {
			a = &agg{min: sec, dists: map[int]int{}}
			byStroke[info.Stroke] = a
		}
		a.count++
		if sec < a.min {
			a.min = sec
		}
		if info.Distance > 0 {
			a.dists[info.Distance]++
		}
	}

	out := make(map[string]FamilyStats, len(FamilyStrokes))
	for _, st := range FamilyStrokes {
		a := byStroke[st]
		if a == nil {
			out[st] = FamilyStats{}
			continue
		}
		fs := FamilyStats{Count: a.count}
		pb := a.min
		fs.PBSeconds = &pb
		if len(a.dists) > 0 {
			// Highest count wins; ties go to the shorter distance so
			// the pick is deterministic.
			var mostDist, mostCount int
			for d, c := range a.dists {
				if c > mostCount || (c == mostCount && d < mostDist) {
					mostDist, mostCount = d, c
				}
			}
			fs.MostDist = &mostDist
			fs.MostCount = &mostCount
		}
		out[st] = fs
	}
	return out
}
