package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Shared rule helpers. Each returns nil when the rule passes.

func requiredString(field string, v any) (string, *ErrField) {
	s, ok := v.(string)
	if !ok {
		return "", &ErrField{Field: field, Msg: "must be a string"}
	}
	return s, nil
}

func minLen(field, value string, min int) *ErrField {
	if len(value) < min {
		return &ErrField{Field: field, Msg: "must have at least " + strconv.Itoa(min) + " characters"}
	}
	return nil
}
