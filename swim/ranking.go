package swim

import (
	"sort"
	"strconv"
	"strings"
)

// PoolPolicy decides which swimmers are comparable to a target for
// ranking. Implementations must be pure: same inputs, same pool.
type PoolPolicy interface {
	// Name identifies the policy in logs and responses.
	Name() string
	// Members returns the set of swimmer names eligible for the pool,
	// always including the target when it appears in rows.
	Members(target string, rows []Record) map[string]bool
}

// CoOccurrencePolicy includes a candidate when at least one of their
// rows shares (year, meet) with one of the target's rows in the same
// event. When the candidate's division on the shared row is not purely
// numeric it must also equal the target's division for that row.
type CoOccurrencePolicy struct{}

func (CoOccurrencePolicy) Name() string { return "cooccurrence" }

func (CoOccurrencePolicy) Members(target string, rows []Record) map[string]bool {
	type meetKey struct{ year, meet string }
	targetMeets := map[meetKey]Record{}
	for _, r := range rows {
		if r.Swimmer != target {
			continue
		}
		k := meetKey{r.Year, r.Meet}
		if _, seen := targetMeets[k]; !seen {
			targetMeets[k] = r
		}
	}

	members := map[string]bool{}
	if len(targetMeets) > 0 {
		members[target] = true
	}
	for _, r := range rows {
		if r.Swimmer == target || members[r.Swimmer] {
			continue
		}
		tr, shared := targetMeets[meetKey{r.Year, r.Meet}]
		if !shared {
			continue
		}
		if !isNumericDivision(r.Division) && r.Division != tr.Division {
			continue
		}
		members[r.Swimmer] = true
	}
	return members
}

// DemographicPolicy includes candidates of the same gender whose birth
// year falls within ToleranceYears of the target's. Candidates with no
// usable gender or birth year are excluded.
type DemographicPolicy struct {
	ToleranceYears int
}

func (DemographicPolicy) Name() string { return "demographic" }

func (p DemographicPolicy) Members(target string, rows []Record) map[string]bool {
	var gender string
	targetBirth, haveBirth := 0, false
	for _, r := range rows {
		if r.Swimmer != target {
			continue
		}
		if gender == "" {
			gender = r.Gender
		}
		if !haveBirth {
			if y, err := strconv.Atoi(strings.TrimSpace(r.BirthYear)); err == nil {
				targetBirth, haveBirth = y, true
			}
		}
	}

	members := map[string]bool{}
	if gender == "" && !haveBirth {
		return members
	}
	members[target] = true
	for _, r := range rows {
		if r.Swimmer == target || members[r.Swimmer] {
			continue
		}
		if gender != "" && r.Gender != gender {
			continue
		}
		if haveBirth {
			y, err := strconv.Atoi(strings.TrimSpace(r.BirthYear))
			if err != nil {
				continue
			}
			if diff := y - targetBirth; diff > p.ToleranceYears || diff < -p.ToleranceYears {
				continue
			}
		}
		members[r.Swimmer] = true
	}
	return members
}

// isNumericDivision reports whether a division string is purely
// digits. Numeric divisions are heat/lane groupings, not competitive
// classes, so they do not gate pool membership.
func isNumericDivision(div string) bool {
	div = strings.TrimSpace(div)
	if div == "" {
		return false
	}
	for _, c := range div {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Entry is one pool member's personal best with its 1-based rank.
type Entry struct {
	Name    string  `json:"name"`
	Rank    int     `json:"rank"`
	Seconds float64 `json:"pbSeconds"`
	Meet    string  `json:"pbMeet"`
	Year    string  `json:"pbYear"`
}

// Ranking is the full comparison of a target swimmer against their
// opponent pool for one event. Rank and Percentile are nil when the
// target has no valid time; Denominator and Top are filled either way.
type Ranking struct {
	Policy       string       `json:"policy"`
	Denominator  int          `json:"denominator"`
	Rank         *int         `json:"rank"`
	Percentile   *float64     `json:"percentile"`
	Top          []Entry      `json:"top"`
	Window       []Entry      `json:"window,omitempty"`
	You          *Entry       `json:"you,omitempty"`
	LeaderSeries []TrendPoint `json:"leaderTrend,omitempty"`
}

// RankingOptions tunes ranking output shape and PB eligibility.
type RankingOptions struct {
	// TopK is the leaderboard length; 0 means 10.
	TopK int
	// Window is the half-width of the neighborhood reported around the
	// target's rank; 0 means 2.
	Window int
	// RestrictToTargetSpan bounds every member's PB search to the
	// year range the target actually raced this event in.
	RestrictToTargetSpan bool
	// IncludeShortCourse forwards to BestOptions.
	IncludeShortCourse bool
}

const (
	defaultTopK   = 10
	defaultWindow = 2
)

// BuildRanking computes the target's standing within the pool the
// policy selects from rows. Rows must already be filtered to one
// event (or event pattern). Percentile is 100*(N-rank+1)/N: rank 1 of
// N scores 100.
func BuildRanking(target string, rows []Record, policy PoolPolicy, opts RankingOptions) Ranking {
	topK := opts.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	window := opts.Window
	if window <= 0 {
		window = defaultWindow
	}

	bySwimmer := map[string][]Record{}
	for _, r := range rows {
		bySwimmer[r.Swimmer] = append(bySwimmer[r.Swimmer], r)
	}

	best := BestOptions{IncludeShortCourse: opts.IncludeShortCourse}
	if opts.RestrictToTargetSpan {
		best.MinYear, best.MaxYear = validSpan(bySwimmer[target])
	}

	members := policy.Members(target, rows)
	entries := make([]Entry, 0, len(members))
	for name := range members {
		pb := BestResult(bySwimmer[name], best)
		if pb == nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Seconds: pb.Seconds,
			Meet:    pb.Meet,
			Year:    pb.Year,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Seconds != b.Seconds {
			return a.Seconds < b.Seconds
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Name < b.Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	rk := Ranking{
		Policy:      policy.Name(),
		Denominator: len(entries),
		Top:         entries[:min(topK, len(entries))],
	}

	for i := range entries {
		if entries[i].Name == target {
			you := entries[i]
			rk.You = &you
			rk.Rank = &you.Rank
			pct := 100 * float64(len(entries)-you.Rank+1) / float64(len(entries))
			rk.Percentile = &pct
			lo := max(0, i-window)
			hi := min(len(entries), i+window+1)
			rk.Window = entries[lo:hi]
			break
		}
	}

	if len(entries) > 0 {
		rk.LeaderSeries = BestByYear(bySwimmer[entries[0].Name])
	}
	return rk
}

// validSpan returns the earliest and latest years among a swimmer's
// valid rows, or empty strings when there are none.
func validSpan(records []Record) (minYear, maxYear string) {
	for _, r := range records {
		if _, ok := r.Seconds(); !ok {
			continue
		}
		if minYear == "" || r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear
}
