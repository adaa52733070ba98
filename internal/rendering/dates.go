package rendering

import "time"

// FormatDate renders a document date for display. An empty value and the
// literal "Present" both render as "Present" (open-ended end dates). Full
// calendar dates render with day granularity, year-month values with month
// granularity. Anything else passes through verbatim.
func FormatDate(value string) string {
	if value == "" || value == "Present" {
		return "Present"
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format("Jan 2, 2006")
	}
	if t, err := time.Parse("2006-01", value); err == nil {
		return t.Format("Jan 2006")
	}
	return value
}
