package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"campuseats/internal/api"
	"campuseats/internal/i18n"
	"campuseats/internal/types"
)

type fakeFetcher struct {
	daily     json.RawMessage
	weekly    json.RawMessage
	dailyErr  error
	weeklyErr error
}

func (f *fakeFetcher) DailyMenu(ctx context.Context, id, lang string) (json.RawMessage, error) {
	return f.daily, f.dailyErr
}

func (f *fakeFetcher) WeeklyMenu(ctx context.Context, id, lang string) (json.RawMessage, error) {
	return f.weekly, f.weeklyErr
}

func courseList(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"name":"Course %d"}`, i+1)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestNormalizeWeeklyPerDayShape(t *testing.T) {
	raw := json.RawMessage(`{"days":[
		{"date":"Mon","courses":[{"name":"a"}]},
		{"date":"Tue","courses":[{"name":"b"},{"name":"c"}]}
	]}`)
	days, err := NormalizeWeekly(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if len(days[0]) != 1 || len(days[1]) != 2 {
		t.Fatalf("unexpected course counts: %d, %d", len(days[0]), len(days[1]))
	}
}

func TestNormalizeWeeklyChunksSingleDay(t *testing.T) {
	raw := json.RawMessage(`{"days":[{"courses":` + courseList(10) + `}]}`)
	days, err := NormalizeWeekly(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 weekday buckets, got %d", len(days))
	}
	for i, d := range days {
		if len(d) != 2 {
			t.Fatalf("bucket %d: expected 2 courses, got %d", i, len(d))
		}
	}
	if days[0][0].Name != "Course 1" || days[4][1].Name != "Course 10" {
		t.Fatalf("chunking scrambled course order: %+v", days)
	}
}

func TestNormalizeWeeklyChunksUnevenCounts(t *testing.T) {
	raw := json.RawMessage(`{"days":[{"courses":` + courseList(7) + `}]}`)
	days, err := NormalizeWeekly(raw)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, d := range days {
		total += len(d)
	}
	if total != 7 {
		t.Fatalf("chunking lost courses: %d of 7", total)
	}
}

func TestNormalizeWeeklyBadPayload(t *testing.T) {
	if _, err := NormalizeWeekly(json.RawMessage(`"nope"`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDailyRendersCourses(t *testing.T) {
	f := &fakeFetcher{daily: json.RawMessage(`{"courses":[
		{"name":"Pea soup","price":"2,70","diets":"G"},
		{"name":"Pancakes"}
	]}`)}
	v := NewViewer(f, nil)
	r := types.Restaurant{ID: "r1", Name: "Bistro Alpha"}

	out := v.Daily(context.Background(), r, i18n.New(i18n.LangEN))
	for _, want := range []string{"Bistro Alpha", "Pea soup", "2,70", "Pancakes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("daily output missing %q:\n%s", want, out)
		}
	}
}

func TestDailyFetchFailureRendersPlaceholder(t *testing.T) {
	f := &fakeFetcher{dailyErr: &api.NetworkError{}}
	v := NewViewer(f, nil)
	r := types.Restaurant{ID: "r1", Name: "Bistro Alpha"}

	out := v.Daily(context.Background(), r, i18n.New(i18n.LangEN))
	if !strings.Contains(out, "No meals available") {
		t.Fatalf("expected no-meals placeholder, got:\n%s", out)
	}
}

func TestDailyEmptyMenuRendersPlaceholder(t *testing.T) {
	f := &fakeFetcher{daily: json.RawMessage(`{"courses":[]}`)}
	v := NewViewer(f, nil)
	out := v.Daily(context.Background(), types.Restaurant{ID: "r1", Name: "X"}, i18n.New(i18n.LangFI))
	if !strings.Contains(out, "Ei aterioita saatavilla") {
		t.Fatalf("expected localized placeholder, got:\n%s", out)
	}
}

func TestWeeklyGroupsUnderWeekdayHeadings(t *testing.T) {
	f := &fakeFetcher{weekly: json.RawMessage(`{"days":[{"courses":` + courseList(10) + `}]}`)}
	v := NewViewer(f, nil)
	out := v.Weekly(context.Background(), types.Restaurant{ID: "r1", Name: "X"}, i18n.New(i18n.LangEN))

	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		if !strings.Contains(out, "## "+day) {
			t.Fatalf("weekly output missing heading %q:\n%s", day, out)
		}
	}
}

func TestWeeklyFetchFailureRendersPlaceholder(t *testing.T) {
	f := &fakeFetcher{weeklyErr: &api.RequestError{Status: 404, Message: "Not found"}}
	v := NewViewer(f, nil)
	out := v.Weekly(context.Background(), types.Restaurant{ID: "r1", Name: "X"}, i18n.New(i18n.LangEN))
	if !strings.Contains(out, "No meals available") {
		t.Fatalf("expected placeholder, got:\n%s", out)
	}
}
