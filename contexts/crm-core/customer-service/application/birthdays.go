package application

import (
	"context"
	"math"
	"time"

	domainerrors "crmgate/contexts/crm-core/customer-service/domain/errors"
	"crmgate/contexts/crm-core/customer-service/ports"
	"crmgate/internal/shared/envelope"
)

const (
	birthdayPageSize  = 100
	birthdayPageCap   = 50
	maxBirthdayWindow = 366
)

// birthDateLayouts are the date formats the CRM has been observed to emit.
var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// UpcomingBirthdays fetches the customer population page by page and filters
// it down to customers whose birthday (month+day, year-agnostic) falls within
// windowDays from today. The backend has no native equivalent, so the filter
// runs here.
func (s Service) UpcomingBirthdays(ctx context.Context, windowDays int) envelope.Result {
	if windowDays < 0 || windowDays > maxBirthdayWindow {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrBadWindow.Error())
	}

	customers := make([]map[string]any, 0, birthdayPageSize)
	// birthdayPageCap bounds a runaway backend; a short page ends the walk.
	for page := 1; page <= birthdayPageCap; page++ {
		res := s.List(ctx, ports.Pagination{PageSize: birthdayPageSize, PageNumber: page})
		if !res.Success {
			return res
		}
		if len(res.Data) == 0 {
			break
		}
		var batch []map[string]any
		if err := res.Decode(&batch); err != nil {
			return envelope.Failf(envelope.CodeUnknown, "decode customer page: %v", err)
		}
		customers = append(customers, batch...)
		if len(batch) < birthdayPageSize {
			break
		}
	}

	return envelope.OkValue(FilterUpcomingBirthdays(customers, time.Now().UTC(), windowDays))
}

// FilterUpcomingBirthdays keeps customers whose next birthday occurrence is
// between 0 and windowDays calendar days from now, inclusive. Customers
// without a parseable birth date are excluded. A December birthday queried in
// late December rolls into January of the next year.
func FilterUpcomingBirthdays(customers []map[string]any, now time.Time, windowDays int) []map[string]any {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	upcoming := make([]map[string]any, 0)
	for _, customer := range customers {
		raw, _ := customer["birthdaydate"].(string)
		birthDate, ok := parseBirthDate(raw)
		if !ok {
			continue
		}
		next := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = next.AddDate(1, 0, 0)
		}
		days := int(math.Ceil(next.Sub(today).Hours() / 24))
		if days <= windowDays {
			upcoming = append(upcoming, customer)
		}
	}
	return upcoming
}

func parseBirthDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
