package service

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/smallbiznis/pricingkit/internal/billingcycle/domain"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	"go.uber.org/zap"
)

type Service struct {
	log *zap.Logger
}

func New(log *zap.Logger) domain.Service {
	return &Service{log: log.Named("billingcycle.service")}
}

func (s *Service) FirstInvoiceDate(start time.Time, period pricedomain.BillingPeriod, cycle domain.BillingCycle) (time.Time, error) {
	start = start.UTC()

	switch cycle {
	case domain.BillingCycleAnniversary:
		return start, nil
	case domain.BillingCycleCalendar:
		boundary, err := periodStart(start, period)
		if err != nil {
			return time.Time{}, err
		}
		if boundary.Equal(start) {
			return start, nil
		}
		return nextPeriodStart(start, period)
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidBillingCycle, cycle)
	}
}

func (s *Service) NextAnchor(current time.Time, period pricedomain.BillingPeriod) (time.Time, error) {
	current = current.UTC()
	switch period {
	case pricedomain.BillingPeriodDaily:
		return current.AddDate(0, 0, 1), nil
	case pricedomain.BillingPeriodWeekly:
		return current.AddDate(0, 0, 7), nil
	case pricedomain.BillingPeriodMonthly:
		return addMonthsClamped(current, 1), nil
	case pricedomain.BillingPeriodQuarterly:
		return addMonthsClamped(current, 3), nil
	case pricedomain.BillingPeriodHalfYearly:
		return addMonthsClamped(current, 6), nil
	case pricedomain.BillingPeriodAnnual:
		return addMonthsClamped(current, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidBillingPeriod, period)
	}
}

func (s *Service) PeriodDuration(period pricedomain.BillingPeriod) (string, error) {
	switch period {
	case pricedomain.BillingPeriodDaily:
		return "1 day", nil
	case pricedomain.BillingPeriodWeekly:
		return "1 week", nil
	case pricedomain.BillingPeriodMonthly:
		return "1 month", nil
	case pricedomain.BillingPeriodQuarterly:
		return "3 months", nil
	case pricedomain.BillingPeriodHalfYearly:
		return "6 months", nil
	case pricedomain.BillingPeriodAnnual:
		return "1 year", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidBillingPeriod, period)
	}
}

func (s *Service) BillingDescription(cadences []pricedomain.InvoiceCadence, period pricedomain.BillingPeriod, date time.Time) (string, error) {
	duration, err := s.PeriodDuration(period)
	if err != nil {
		return "", err
	}

	advance := lo.Contains(cadences, pricedomain.InvoiceCadenceAdvance)
	if advance {
		return fmt.Sprintf("billed immediately for %s", duration), nil
	}
	return fmt.Sprintf("billed on %s for %s", date.UTC().Format("Jan 2, 2006"), duration), nil
}

// periodStart truncates an instant to the start of its canonical period.
// Weeks start on Monday; quarters on Jan/Apr/Jul/Oct 1; halves on Jan/Jul 1.
func periodStart(t time.Time, period pricedomain.BillingPeriod) (time.Time, error) {
	y, m, d := t.Date()
	switch period {
	case pricedomain.BillingPeriodDaily:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case pricedomain.BillingPeriodWeekly:
		offset := (int(t.Weekday()) + 6) % 7 // days since Monday
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC), nil
	case pricedomain.BillingPeriodMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), nil
	case pricedomain.BillingPeriodQuarterly:
		quarterMonth := time.Month(((int(m)-1)/3)*3 + 1)
		return time.Date(y, quarterMonth, 1, 0, 0, 0, 0, time.UTC), nil
	case pricedomain.BillingPeriodHalfYearly:
		halfMonth := time.January
		if m >= time.July {
			halfMonth = time.July
		}
		return time.Date(y, halfMonth, 1, 0, 0, 0, 0, time.UTC), nil
	case pricedomain.BillingPeriodAnnual:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidBillingPeriod, period)
	}
}

// nextPeriodStart returns the start of the canonical period after the one
// containing t.
func nextPeriodStart(t time.Time, period pricedomain.BillingPeriod) (time.Time, error) {
	start, err := periodStart(t, period)
	if err != nil {
		return time.Time{}, err
	}
	switch period {
	case pricedomain.BillingPeriodDaily:
		return start.AddDate(0, 0, 1), nil
	case pricedomain.BillingPeriodWeekly:
		return start.AddDate(0, 0, 7), nil
	case pricedomain.BillingPeriodMonthly:
		return start.AddDate(0, 1, 0), nil
	case pricedomain.BillingPeriodQuarterly:
		return start.AddDate(0, 3, 0), nil
	case pricedomain.BillingPeriodHalfYearly:
		return start.AddDate(0, 6, 0), nil
	default:
		return start.AddDate(1, 0, 0), nil
	}
}

// addMonthsClamped adds months keeping the day-of-month where possible and
// clamping to the target month's last day (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, h, min, sec, t.Nanosecond(), time.UTC)
}
