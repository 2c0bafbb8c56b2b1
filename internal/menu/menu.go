// Package menu fetches and normalizes restaurant menus. Menus are
// transient: fetched per view, rendered, and discarded.
//
// The weekly endpoint is served in two shapes by the upstream API: the
// usual one entry per weekday, and occasionally a single day entry holding
// the whole week's courses. The second shape is normalized by chunking the
// courses evenly into five synthetic weekday buckets. This is a
// compatibility shim for inconsistent upstream data, not domain logic;
// both shapes must keep working.
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"campuseats/internal/i18n"
	"campuseats/internal/types"
)

// weekdayBuckets is the number of synthetic buckets for the chunked shape.
const weekdayBuckets = 5

// Fetcher is the slice of the API client the viewer needs.
type Fetcher interface {
	DailyMenu(ctx context.Context, id, lang string) (json.RawMessage, error)
	WeeklyMenu(ctx context.Context, id, lang string) (json.RawMessage, error)
}

// ParseDaily decodes a daily menu payload into a flat course list.
func ParseDaily(raw json.RawMessage) ([]types.Course, error) {
	var daily types.DailyMenu
	if err := json.Unmarshal(raw, &daily); err != nil {
		return nil, fmt.Errorf("failed to decode daily menu: %w", err)
	}
	return daily.Courses, nil
}

// NormalizeWeekly decodes a weekly menu payload and returns exactly one
// course list per weekday bucket. A single-day payload is split evenly
// across the five buckets.
func NormalizeWeekly(raw json.RawMessage) ([][]types.Course, error) {
	var weekly types.WeeklyMenu
	if err := json.Unmarshal(raw, &weekly); err != nil {
		return nil, fmt.Errorf("failed to decode weekly menu: %w", err)
	}

	if len(weekly.Days) == 1 {
		return chunkCourses(weekly.Days[0].Courses), nil
	}

	out := make([][]types.Course, 0, len(weekly.Days))
	for _, day := range weekly.Days {
		out = append(out, day.Courses)
	}
	return out, nil
}

// chunkCourses splits a flat course list into five equal-as-possible
// buckets, earlier buckets taking the remainder.
func chunkCourses(courses []types.Course) [][]types.Course {
	out := make([][]types.Course, weekdayBuckets)
	if len(courses) == 0 {
		return out
	}
	size := (len(courses) + weekdayBuckets - 1) / weekdayBuckets
	for i := 0; i < weekdayBuckets; i++ {
		start := i * size
		if start >= len(courses) {
			break
		}
		end := start + size
		if end > len(courses) {
			end = len(courses)
		}
		out[i] = courses[start:end]
	}
	return out
}

// Viewer fetches menus and composes them as markdown for the overlay.
// Every fetch or shape failure degrades to the "no meals" placeholder; no
// error escapes a Show call.
type Viewer struct {
	client Fetcher
	logger *zap.Logger
}

// NewViewer creates a menu viewer over the given client.
func NewViewer(client Fetcher, logger *zap.Logger) *Viewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewer{client: client, logger: logger}
}

// Daily returns the daily menu for one restaurant as markdown.
func (v *Viewer) Daily(ctx context.Context, r types.Restaurant, tr *i18n.Translator) string {
	raw, err := v.client.DailyMenu(ctx, r.ID, tr.Lang())
	if err != nil {
		v.logger.Debug("daily menu fetch failed", zap.String("restaurant", r.ID), zap.Error(err))
		return placeholder(r, tr)
	}
	courses, err := ParseDaily(raw)
	if err != nil || len(courses) == 0 {
		return placeholder(r, tr)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s — %s\n\n", r.Name, tr.T("daily_menu"))
	writeCourses(&sb, courses, tr)
	return sb.String()
}

// Weekly returns the weekly menu for one restaurant as markdown, grouped
// under translated weekday headings.
func (v *Viewer) Weekly(ctx context.Context, r types.Restaurant, tr *i18n.Translator) string {
	raw, err := v.client.WeeklyMenu(ctx, r.ID, tr.Lang())
	if err != nil {
		v.logger.Debug("weekly menu fetch failed", zap.String("restaurant", r.ID), zap.Error(err))
		return placeholder(r, tr)
	}
	days, err := NormalizeWeekly(raw)
	if err != nil {
		return placeholder(r, tr)
	}

	weekdays := tr.Weekdays()
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s — %s\n\n", r.Name, tr.T("weekly_menu"))
	any := false
	for i, courses := range days {
		if len(courses) == 0 {
			continue
		}
		any = true
		name := fmt.Sprintf("%d", i+1)
		if i < len(weekdays) {
			name = weekdays[i]
		}
		fmt.Fprintf(&sb, "## %s\n\n", name)
		writeCourses(&sb, courses, tr)
	}
	if !any {
		return placeholder(r, tr)
	}
	return sb.String()
}

func writeCourses(sb *strings.Builder, courses []types.Course, tr *i18n.Translator) {
	for _, c := range courses {
		sb.WriteString("- **" + c.Name + "**")
		if c.Diets != "" {
			sb.WriteString(" _" + c.Diets + "_")
		}
		if c.Price != "" {
			sb.WriteString(" — " + c.Price)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func placeholder(r types.Restaurant, tr *i18n.Translator) string {
	return fmt.Sprintf("# %s\n\n%s\n", r.Name, tr.T("no_meals"))
}
