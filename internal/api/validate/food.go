package validate

import (
	"time"

	"github.com/google/uuid"
)

type FoodInput struct {
	Name        string
	Description string
	Date        time.Time
	IsItOnDiet  bool
}

// FoodBody checks the create/update food payload field by field so the 400
// body names every offending field rather than only the first.
func FoodBody(raw map[string]any) (FoodInput, Errs) {
	var in FoodInput
	var errs Errs

	if s, ef := requiredString("name", raw["name"]); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Name = s
	}

	if s, ef := requiredString("description", raw["description"]); ef != nil {
		errs = append(errs, *ef)
	} else {
		in.Description = s
	}

	if t, ok := parseDate(raw["date"]); ok {
		in.Date = t
	} else {
		errs = append(errs, ErrField{Field: "date", Msg: "must be a valid date"})
	}

	if b, ok := raw["isItOnDiet"].(bool); ok {
		in.IsItOnDiet = b
	} else {
		errs = append(errs, ErrField{Field: "isItOnDiet", Msg: "must be a boolean"})
	}

	return in, errs
}

// FoodID checks the foodId path parameter for uuid syntax.
func FoodID(param string) Errs {
	if err := uuid.Validate(param); err != nil {
		return Errs{{Field: "foodId", Msg: "must be a valid uuid"}}
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts a timestamp string or epoch milliseconds, the two shapes
// JSON clients actually send for dates.
func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	case float64:
		return time.UnixMilli(int64(d)), true
	}
	return time.Time{}, false
}
