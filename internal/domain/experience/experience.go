// Package experience turns the flat list of roles from the portfolio document
// into the grouped, tenure-annotated timeline shown on the about section.
//
// Every function here is a best-effort formatter for hand-written content:
// none of them returns an error. Unparseable input degrades to the current
// month, an empty string or zero.
package experience

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// PeriodSeparator splits a period string into its two boundaries.
	PeriodSeparator = " - "
	// Present marks an ongoing role on the end side of a period.
	Present = "Present"

	monthYearLayout = "Jan 2006"
)

// Record is one role held at one employer, as stored in the content document.
type Record struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	WorkType    string `json:"workType,omitempty"`
}

// CompanyGroup collects every role held at one employer.
type CompanyGroup struct {
	Company       string   `json:"company"`
	Positions     []Record `json:"positions"`
	OverallPeriod string   `json:"overallPeriod"`
	Duration      string   `json:"duration"`
	Location      string   `json:"location,omitempty"`
	WorkType      string   `json:"workType,omitempty"`
	HasSingleRole bool     `json:"hasSingleRole"`
}

// Aggregator holds the clock used to resolve "Present" and fallbacks.
type Aggregator struct {
	now func() time.Time
}

func NewAggregator(now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{now: now}
}

var defaultAggregator = NewAggregator(time.Now)

func ParsePeriodBoundary(period string, wantStart bool) time.Time {
	return defaultAggregator.ParsePeriodBoundary(period, wantStart)
}

func ComputeDuration(period string) string {
	return defaultAggregator.ComputeDuration(period)
}

func YearsOfExperience(careerStart time.Time) int {
	return defaultAggregator.YearsOfExperience(careerStart)
}

func GroupByCompany(records []Record) []CompanyGroup {
	return defaultAggregator.GroupByCompany(records)
}

// currentMonth is "today" at year-month granularity.
func (a *Aggregator) currentMonth() time.Time {
	n := a.now()
	return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParsePeriodBoundary returns the start or end of a period. Malformed
// periods and unparseable boundaries resolve to the current month.
func (a *Aggregator) ParsePeriodBoundary(period string, wantStart bool) time.Time {
	t, _ := a.boundary(period, wantStart)
	return t
}

// boundary reports ok=false when the fallback had to be used.
func (a *Aggregator) boundary(period string, wantStart bool) (time.Time, bool) {
	parts := strings.Split(period, PeriodSeparator)
	if len(parts) != 2 {
		return a.currentMonth(), false
	}

	raw := strings.TrimSpace(parts[1])
	if wantStart {
		raw = strings.TrimSpace(parts[0])
	} else if isPresent(raw) {
		return a.currentMonth(), true
	}

	t, ok := ParseMonthYear(raw)
	if !ok {
		return a.currentMonth(), false
	}
	return t, true
}

// IsOngoing reports whether the end side of period is "Present".
func IsOngoing(period string) bool {
	parts := strings.Split(period, PeriodSeparator)
	return len(parts) == 2 && isPresent(strings.TrimSpace(parts[1]))
}

func isPresent(s string) bool {
	return strings.EqualFold(s, Present)
}

// ComputeDuration renders the elapsed whole months of period, e.g.
// "1 yr 2 mos". Zero, negative or unparseable periods render as "".
func (a *Aggregator) ComputeDuration(period string) string {
	start, ok := a.boundary(period, true)
	if !ok {
		return ""
	}
	end, ok := a.boundary(period, false)
	if !ok {
		return ""
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		return ""
	}
	return FormatDuration(years, months)
}

// FormatDuration applies the display rules for a (years, months) pair.
func FormatDuration(years, months int) string {
	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d yr%s %d mo%s", years, plural(years), months, plural(months))
	case years > 0:
		return fmt.Sprintf("%d yr%s", years, plural(years))
	case months > 0:
		return fmt.Sprintf("%d mo%s", months, plural(months))
	default:
		return ""
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// YearsOfExperience counts completed anniversaries of careerStart, never
// less than zero.
func (a *Aggregator) YearsOfExperience(careerStart time.Time) int {
	if careerStart.IsZero() {
		return 0
	}
	today := a.now()
	years := today.Year() - careerStart.Year()
	if today.Month() < careerStart.Month() ||
		(today.Month() == careerStart.Month() && today.Day() < careerStart.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

type boundedRecord struct {
	Record
	start   time.Time
	end     time.Time
	ongoing bool
}

// laterEnd orders ongoing roles first, then by end date descending.
func laterEnd(aOngoing bool, aEnd time.Time, bOngoing bool, bEnd time.Time) bool {
	if aOngoing != bOngoing {
		return aOngoing
	}
	return aEnd.After(bEnd)
}

// GroupByCompany partitions records by employer. Positions inside a group
// and the groups themselves are ordered most recent first; ongoing roles
// always lead.
func (a *Aggregator) GroupByCompany(records []Record) []CompanyGroup {
	order := make([]string, 0)
	byCompany := make(map[string][]boundedRecord)

	for _, r := range records {
		if _, seen := byCompany[r.Company]; !seen {
			order = append(order, r.Company)
		}
		byCompany[r.Company] = append(byCompany[r.Company], boundedRecord{
			Record:  r,
			start:   a.ParsePeriodBoundary(r.Period, true),
			end:     a.ParsePeriodBoundary(r.Period, false),
			ongoing: IsOngoing(r.Period),
		})
	}

	type sortableGroup struct {
		group     CompanyGroup
		latestEnd time.Time
		ongoing   bool
	}
	sortable := make([]sortableGroup, 0, len(order))

	for _, company := range order {
		positions := byCompany[company]
		sort.SliceStable(positions, func(i, j int) bool {
			return laterEnd(positions[i].ongoing, positions[i].end, positions[j].ongoing, positions[j].end)
		})

		earliest := positions[0].start
		latest := positions[0].end
		ongoing := false
		roles := make([]Record, len(positions))
		for i, p := range positions {
			roles[i] = p.Record
			if p.start.Before(earliest) {
				earliest = p.start
			}
			if p.end.After(latest) {
				latest = p.end
			}
			ongoing = ongoing || p.ongoing
		}

		endLabel := latest.Format(monthYearLayout)
		if ongoing {
			endLabel = Present
		}
		overall := earliest.Format(monthYearLayout) + PeriodSeparator + endLabel

		sortable = append(sortable, sortableGroup{
			group: CompanyGroup{
				Company:       company,
				Positions:     roles,
				OverallPeriod: overall,
				Duration:      a.ComputeDuration(overall),
				Location:      roles[0].Location,
				WorkType:      roles[0].WorkType,
				HasSingleRole: len(roles) == 1,
			},
			latestEnd: latest,
			ongoing:   ongoing,
		})
	}

	sort.SliceStable(sortable, func(i, j int) bool {
		return laterEnd(sortable[i].ongoing, sortable[i].latestEnd, sortable[j].ongoing, sortable[j].latestEnd)
	})

	groups := make([]CompanyGroup, len(sortable))
	for i, s := range sortable {
		groups[i] = s.group
	}
	return groups
}

// DescriptionToBulletPoints splits free text into bullets. The delimiter is
// chosen in fixed priority: "•", then newline, then ". ", else the text is
// returned as a single bullet.
func DescriptionToBulletPoints(description string) []string {
	switch {
	case strings.Contains(description, "•"):
		return splitNonEmpty(description, "•")
	case strings.Contains(description, "\n"):
		return splitNonEmpty(description, "\n")
	case strings.Contains(description, ". "):
		sentences := splitNonEmpty(description, ". ")
		for i, s := range sentences {
			if !strings.HasSuffix(s, ".") {
				sentences[i] = s + "."
			}
		}
		return sentences
	default:
		return []string{description}
	}
}

func splitNonEmpty(s, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseMonthYear parses "Jan 2021", "January 2021", "Sept. 2021" or a bare
// "2021" (read as January) into the first day of that month, UTC.
func ParseMonthYear(s string) (time.Time, bool) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))

	switch len(fields) {
	case 1:
		year, err := strconv.Atoi(fields[0])
		if err != nil || year < 1 {
			return time.Time{}, false
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	case 2:
		month, ok := monthNames[strings.TrimSuffix(strings.ToLower(fields[0]), ".")]
		if !ok {
			return time.Time{}, false
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil || year < 1 {
			return time.Time{}, false
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// FormatMonthYear renders t as "Jan 2021".
func FormatMonthYear(t time.Time) string {
	return t.Format(monthYearLayout)
}

// ParseCareerStart accepts the ISO-8601 forms found in content documents:
// "2018-06-01", "2018-06" or a full RFC 3339 timestamp.
func ParseCareerStart(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
