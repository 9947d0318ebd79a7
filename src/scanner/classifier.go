package scanner

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/models"
)

const weeklyWindowDays = 7

// ClassifyExpirations scans an ascending list of expiration dates and picks
// the nearest weekly (within 7 days of today) and the monthly (the 3rd or
// 4th Friday of its month). Either result may be empty; the two scans are
// independent. Malformed dates are skipped.
func ClassifyExpirations(dates []string, today time.Time) (weekly string, monthly string) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	for _, raw := range dates {
		exp, err := time.Parse(models.ExpirationLayout, raw)
		if err != nil {
			log.Warnf("ClassifyExpirations: skipping malformed expiration %q: %v", raw, err)
			continue
		}

		daysOut := int(exp.Sub(day).Hours() / 24)

		if weekly == "" && daysOut >= 0 && daysOut <= weeklyWindowDays {
			weekly = raw
		}

		if monthly == "" && isMonthlyExpiration(exp) {
			monthly = raw
		}

		if weekly != "" && monthly != "" {
			break
		}
	}

	return weekly, monthly
}

// isMonthlyExpiration reports whether d is the 3rd or 4th Friday of its
// calendar month, the standard monthly option expiration.
func isMonthlyExpiration(d time.Time) bool {
	if d.Weekday() != time.Friday {
		return false
	}

	weekOfMonth := (d.Day()-1)/7 + 1
	return weekOfMonth == 3 || weekOfMonth == 4
}
