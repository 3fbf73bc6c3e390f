package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/horizonlabs/media-analytics-go/internal/analytics"
	"github.com/horizonlabs/media-analytics-go/internal/models"
)

// ParseError marks a malformed cell. Any occurrence aborts the whole load:
// a partially loaded dataset would silently corrupt every aggregate
// downstream, which is worse than serving no dataset at all.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: field %q value %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var requiredColumns = []string{
	"partner", "channel", "subchannel", "campaign", "tactic", "brand",
	"week-date", "spend", "impressions", "clicks", "sales", "total-sales-week",
}

// Loader parses the source table into normalized, week-keyed records.
type Loader struct {
	src      Source
	validate *validator.Validate
	log      *slog.Logger
}

func NewLoader(src Source, log *slog.Logger) *Loader {
	return &Loader{src: src, validate: validator.New(), log: log}
}

// Load reads the full table, coerces and validates every row, derives the
// calendar week fields and returns the records sorted ascending by yearWeek.
func (l *Loader) Load(ctx context.Context) ([]models.Record, error) {
	rc, err := l.src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if blank(row) {
			continue
		}

		rec, err := l.parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].YearWeek < records[j].YearWeek })

	l.log.Info("dataset loaded",
		slog.Int("records", len(records)),
		slog.Int("weeks", len(analytics.DistinctWeeks(records))))
	return records, nil
}

func (l *Loader) parseRow(row []string, cols map[string]int, line int) (models.Record, error) {
	get := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := models.Record{
		Partner:    get("partner"),
		Channel:    get("channel"),
		Subchannel: get("subchannel"),
		Campaign:   get("campaign"),
		Tactic:     get("tactic"),
		Brand:      get("brand"),
		WeekDate:   get("week-date"),
	}

	var err error
	if rec.Spend, err = parseDecimal(get("spend")); err != nil {
		return rec, &ParseError{Line: line, Field: "spend", Value: get("spend"), Err: err}
	}
	if rec.Impressions, err = parseCount(get("impressions")); err != nil {
		return rec, &ParseError{Line: line, Field: "impressions", Value: get("impressions"), Err: err}
	}
	if rec.Clicks, err = parseCount(get("clicks")); err != nil {
		return rec, &ParseError{Line: line, Field: "clicks", Value: get("clicks"), Err: err}
	}
	if rec.Sales, err = parseDecimal(get("sales")); err != nil {
		return rec, &ParseError{Line: line, Field: "sales", Value: get("sales"), Err: err}
	}
	if rec.TotalSalesWeek, err = parseDecimal(get("total-sales-week")); err != nil {
		return rec, &ParseError{Line: line, Field: "total-sales-week", Value: get("total-sales-week"), Err: err}
	}

	d, err := analytics.ParseWeekDate(rec.WeekDate)
	if err != nil {
		return rec, &ParseError{Line: line, Field: "week-date", Value: rec.WeekDate, Err: err}
	}
	rec.Year, rec.Week, rec.YearWeek = analytics.YearWeekOf(d)

	if err := l.validate.Struct(rec); err != nil {
		return rec, fmt.Errorf("line %d: invalid record: %w", line, err)
	}
	return rec, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("source data missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// Empty numeric cells coerce to 0; anything else non-numeric is an error.
func parseDecimal(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
