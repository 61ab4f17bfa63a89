package controllers

import (
	"fmt"
	"time"

	"assettracker/src/utils"
)

// toInt coerces a decoded JSON value into an int. JSON numbers arrive as
// float64; only whole values qualify.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// toString renders a decoded JSON value as a string for text columns.
func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// parseDateValue converts a decoded JSON date value into something the date
// codec accepts: nil stays nil (NULL), strings must be YYYY-MM-DD.
func parseDateValue(field string, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, utils.BadRequest(fmt.Sprintf("Invalid date value for %s", field))
	}
	t, err := time.Parse(utils.ShortDashDateLayout, s)
	if err != nil {
		return nil, utils.BadRequest(fmt.Sprintf("Invalid date value for %s", field))
	}
	return t, nil
}
