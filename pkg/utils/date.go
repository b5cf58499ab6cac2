package utils

import "time"

// ParseDate valida uma data no formato yyyy-mm-dd
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Today retorna a data corrente no formato yyyy-mm-dd
func Today() string {
	return time.Now().Format("2006-01-02")
}
