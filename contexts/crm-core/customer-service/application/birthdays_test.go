package application

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"crmgate/internal/shared/envelope"
)

func customer(name, birthDate string) map[string]any {
	return map[string]any{"firstname": name, "birthdaydate": birthDate}
}

func names(customers []map[string]any) []string {
	out := make([]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, c["firstname"].(string))
	}
	return out
}

func TestFilterUpcomingBirthdaysWindow(t *testing.T) {
	today := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	customers := []map[string]any{
		customer("inside", "1990-06-15"),
		customer("past", "1990-05-01"),
		customer("far", "1990-12-25"),
		customer("today", "1990-06-01"),
	}

	got := names(FilterUpcomingBirthdays(customers, today, 30))
	want := []string{"inside", "today"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterUpcomingBirthdaysYearEndWraparound(t *testing.T) {
	today := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	customers := []map[string]any{
		customer("january", "1985-01-02"), // 13 days after rolling to next year
		customer("february", "1985-02-10"),
	}

	got := names(FilterUpcomingBirthdays(customers, today, 15))
	if fmt.Sprint(got) != fmt.Sprint([]string{"january"}) {
		t.Fatalf("expected wraparound inclusion, got %v", got)
	}
}

func TestFilterUpcomingBirthdaysSkipsUnparseable(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	customers := []map[string]any{
		customer("ok", "1990-06-05"),
		customer("blank", ""),
		customer("garbage", "not-a-date"),
		{"firstname": "missing"},
	}

	got := names(FilterUpcomingBirthdays(customers, today, 30))
	if fmt.Sprint(got) != fmt.Sprint([]string{"ok"}) {
		t.Fatalf("unparseable dates must be excluded, got %v", got)
	}
}

func TestFilterUpcomingBirthdaysAcceptsTimestampLayouts(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	customers := []map[string]any{
		customer("rfc3339", "1990-06-10T00:00:00Z"),
		customer("datetime", "1990-06-11T12:00:00"),
		customer("slash", "06/12/1990"),
	}

	got := FilterUpcomingBirthdays(customers, today, 30)
	if len(got) != 3 {
		t.Fatalf("expected all layouts parsed, got %v", names(got))
	}
}

func TestUpcomingBirthdaysWalksPages(t *testing.T) {
	fullPage := make([]map[string]any, birthdayPageSize)
	for i := range fullPage {
		fullPage[i] = customer(fmt.Sprintf("far-%d", i), "1990-12-25")
	}
	fullPage[0] = customer("page1-hit", "1990-06-05")
	shortPage := []map[string]any{customer("page2-hit", "1990-06-07")}

	encode := func(v any) envelope.Result {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal page: %v", err)
		}
		return envelope.Ok(raw)
	}

	backend := &fakeBackend{results: []envelope.Result{
		encode(fullPage),
		encode(shortPage),
	}}
	service := Service{Backend: backend}

	res := service.UpcomingBirthdays(context.Background(), 366)
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}
	if len(backend.requests) != 2 {
		t.Fatalf("expected 2 page fetches, got %d", len(backend.requests))
	}

	var upcoming []map[string]any
	if err := res.Decode(&upcoming); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(upcoming) != birthdayPageSize+1 {
		t.Fatalf("expected customers from both pages, got %d", len(upcoming))
	}
}

func TestUpcomingBirthdaysRejectsBadWindow(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	for _, days := range []int{-1, 1000} {
		res := service.UpcomingBirthdays(context.Background(), days)
		if !res.IsValidation() {
			t.Fatalf("window %d: expected validation failure, got %+v", days, res)
		}
	}
	if len(backend.requests) != 0 {
		t.Fatal("invalid window must not reach the backend")
	}
}

func TestUpcomingBirthdaysPropagatesFetchFailure(t *testing.T) {
	backend := &fakeBackend{results: []envelope.Result{envelope.Fail("502", "upstream broke")}}
	service := Service{Backend: backend}

	res := service.UpcomingBirthdays(context.Background(), 30)
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.ErrorCode() != "502" {
		t.Fatalf("backend failure must pass through, got %s", res.ErrorCode())
	}
}
