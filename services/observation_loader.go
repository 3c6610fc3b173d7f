package services

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"crowd-dashboard/api/crowdfeed"
	"crowd-dashboard/dao/snapshot"
	"crowd-dashboard/models"
)

var (
	dateFormatRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormatRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// requiredColumns must all be present in the CSV header for a load to
// proceed.
var requiredColumns = []string{"date", "time", "count"}

// inflightLoad lets concurrent Load calls share one fetch.
type inflightLoad struct {
	done         chan struct{}
	observations []models.Observation
	err          error
}

// ObservationLoader fetches the occupancy CSV, parses and validates it
// into observations, and caches the result for the freshness window.
type ObservationLoader struct {
	feed      crowdfeed.CrowdFeed
	snapshots *snapshot.SnapshotDAO
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	inflight *inflightLoad
}

// NewObservationLoader constructs a loader with its feed, snapshot
// store and freshness window.
func NewObservationLoader(
	feed crowdfeed.CrowdFeed,
	snapshots *snapshot.SnapshotDAO,
	ttl time.Duration,
) *ObservationLoader {
	return &ObservationLoader{
		feed:      feed,
		snapshots: snapshots,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Load returns the parsed observation set. Within the freshness window
// a call with forceReload=false is served from the cache. Concurrent
// calls coalesce onto a single in-flight fetch.
func (l *ObservationLoader) Load(forceReload bool) ([]models.Observation, error) {
	l.mu.Lock()
	if l.inflight != nil {
		in := l.inflight
		l.mu.Unlock()
		<-in.done
		return in.observations, in.err
	}

	if !forceReload {
		if snap, err := l.snapshots.GetSnapshot(); err == nil && snap != nil {
			if l.now().Sub(snap.FetchedAt) < l.ttl {
				l.mu.Unlock()
				log.Printf("[ObservationLoader] Using cached snapshot (%d records)", len(snap.Observations))
				return snap.Observations, nil
			}
		}
	}

	in := &inflightLoad{done: make(chan struct{})}
	l.inflight = in
	l.mu.Unlock()

	observations, err := l.fetchAndParse()
	in.observations, in.err = observations, err

	l.mu.Lock()
	l.inflight = nil
	l.mu.Unlock()
	close(in.done)

	return observations, err
}

// ClearCache drops the cached snapshot so the next Load re-fetches.
func (l *ObservationLoader) ClearCache() error {
	if err := l.snapshots.Clear(); err != nil {
		return err
	}
	log.Println("[ObservationLoader] Cache cleared")
	return nil
}

func (l *ObservationLoader) fetchAndParse() ([]models.Observation, error) {
	log.Println("[ObservationLoader] Fetching crowd snapshot")
	text, err := l.feed.FetchSnapshotCSV()
	if err != nil {
		return nil, &LoadError{Reason: "fetch failed", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &LoadError{Reason: "empty payload"}
	}

	observations, err := ParseSnapshotCSV(text)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, &LoadError{Reason: "no data found"}
	}

	fetchedAt := l.now()
	if err := l.snapshots.SaveSnapshot(observations, fetchedAt, l.ttl); err != nil {
		// A broken cache should not fail an otherwise good load.
		log.Printf("[ObservationLoader] Failed to cache snapshot: %v", err)
	}

	log.Printf("[ObservationLoader] Loaded %d records", len(observations))
	return observations, nil
}

// ParseSnapshotCSV parses the raw CSV text into observations. Rows
// failing validation are dropped; only a missing required column is
// fatal.
func ParseSnapshotCSV(text string) ([]models.Observation, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, &LoadError{Reason: "csv must contain a header and at least one data row"}
	}

	header := parseCSVLine(lines[0])
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &LoadError{Reason: "missing required column " + required}
		}
	}

	var observations []models.Observation
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := parseCSVLine(line)
		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[idx])
		}

		obs, ok := buildObservation(field)
		if !ok {
			continue
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

// buildObservation validates and coerces one row. The second return
// value reports whether the row survived.
func buildObservation(field func(string) string) (models.Observation, bool) {
	date := field("date")
	timeOfDay := field("time")
	countRaw := field("count")

	if !dateFormatRegex.MatchString(date) {
		return models.Observation{}, false
	}
	// The regex only checks shape; "2024-13-40" must still be dropped.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.Observation{}, false
	}
	if !timeFormatRegex.MatchString(timeOfDay) {
		return models.Observation{}, false
	}
	// The measured quantity must parse; zero-filling it would bias
	// every downstream average.
	count, err := strconv.Atoi(countRaw)
	if err != nil || count < 0 {
		return models.Observation{}, false
	}

	hour, err := strconv.Atoi(field("hour"))
	if err != nil || hour < 0 || hour > 23 {
		hour = hourFromTime(timeOfDay)
	}

	weekday := field("weekday")
	if !isCanonicalWeekday(weekday) {
		weekday = weekdayFromDate(date)
	}

	return models.Observation{
		Datetime:    field("datetime"),
		Date:        date,
		Time:        timeOfDay,
		Hour:        hour,
		Weekday:     weekday,
		Count:       count,
		StatusLabel: field("status_label"),
		StatusCode:  atoiOrZero(field("status_code")),
		StatusMin:   atoiOrZero(field("status_min")),
		StatusMax:   atoiOrZero(field("status_max")),
		RawText:     field("raw_text"),
	}, true
}

// parseCSVLine splits one CSV line on commas, honoring double-quoted
// fields. A doubled quote inside a quoted field is a literal quote.
func parseCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		char := line[i]
		switch {
		case char == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case char == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}

	result = append(result, current.String())
	return result
}

func hourFromTime(timeOfDay string) int {
	parts := strings.SplitN(timeOfDay, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

func weekdayFromDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

func isCanonicalWeekday(weekday string) bool {
	for _, day := range models.CanonicalWeekdays {
		if weekday == day {
			return true
		}
	}
	return false
}

func atoiOrZero(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
