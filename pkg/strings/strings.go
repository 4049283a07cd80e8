// Package strings provides string classification and typed parsing
// utilities for tabular cell values: empty/none-like detection, boolean
// token recognition, date/time shape matching, and parsers with
// default-on-failure semantics.
package strings

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// noneTokens are the recognized representations of an absent value,
// compared case-insensitively after trimming.
var noneTokens = map[string]struct{}{
	"none": {},
	"null": {},
	"nil":  {},
	"n/a":  {},
}

// boolTokens maps recognized boolean tokens to their values.
var boolTokens = map[string]bool{
	"true":  true,
	"false": false,
	"yes":   true,
	"no":    false,
}

// shape pairs a cheap regex prefilter with the layout that decides
// whether a candidate actually parses.
type shape struct {
	re     *regexp.Regexp
	layout string
}

var (
	dateShapes = []shape{
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
		{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`), "2006/01/02"},
		{regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "01/02/2006"},
		{regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`), "02-01-2006"},
	}

	dateTimeShapes = []shape{
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), "2006-01-02T15:04:05Z"},
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`), "2006-01-02T15:04:05-07:00"},
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`), "2006-01-02T15:04:05"},
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), "2006-01-02 15:04:05"},
	}

	timeShapes = []shape{
		{regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), "15:04:05"},
		{regexp.MustCompile(`^\d{2}:\d{2}$`), "15:04"},
	}
)

// IsEmptyLike reports whether s is blank or whitespace-only.
func IsEmptyLike(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNoneLike reports whether s is a recognized null token such as
// "NULL" or "N/A", case-insensitive.
func IsNoneLike(s string) bool {
	_, ok := noneTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsBoolToken reports whether s is a recognized boolean token.
func IsBoolToken(s string) bool {
	_, ok := boolTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsIntegerLike reports whether s parses as a base-10 integer.
func IsIntegerLike(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// IsFloatLike reports whether s parses as a decimal number.
func IsFloatLike(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// IsDateLike reports whether s matches a recognized date shape.
func IsDateLike(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsDateTimeLike reports whether s matches a recognized datetime shape.
func IsDateTimeLike(s string) bool {
	_, err := ParseDateTime(s)
	return err == nil
}

// IsTimeLike reports whether s matches a recognized time-of-day shape.
func IsTimeLike(s string) bool {
	_, err := ParseTime(s)
	return err == nil
}

// ParseBool parses a recognized boolean token.
func ParseBool(s string) (bool, error) {
	v, ok := boolTokens[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, &ParseError{Value: s, Target: "bool"}
	}
	return v, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ParseError{Value: s, Target: "int", cause: err}
	}
	return v, nil
}

// ParseFloat parses a decimal number.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Value: s, Target: "float", cause: err}
	}
	return v, nil
}

// ParseDate parses a calendar date in one of the recognized layouts.
func ParseDate(s string) (time.Time, error) {
	return parseShapes(s, "date", dateShapes)
}

// ParseDateTime parses a timestamp in one of the recognized layouts.
func ParseDateTime(s string) (time.Time, error) {
	return parseShapes(s, "datetime", dateTimeShapes)
}

// ParseTime parses a time of day in one of the recognized layouts.
func ParseTime(s string) (time.Time, error) {
	return parseShapes(s, "time", timeShapes)
}

func parseShapes(s, target string, shapes []shape) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, sh := range shapes {
		if !sh.re.MatchString(trimmed) {
			continue
		}
		if t, err := time.Parse(sh.layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: s, Target: target}
}

// ToBool parses s as a boolean token, returning def on failure.
func ToBool(s string, def bool) bool {
	if v, err := ParseBool(s); err == nil {
		return v
	}
	return def
}

// ToInt parses s as an integer, returning def on failure.
func ToInt(s string, def int64) int64 {
	if v, err := ParseInt(s); err == nil {
		return v
	}
	return def
}

// ToFloat parses s as a float, returning def on failure.
func ToFloat(s string, def float64) float64 {
	if v, err := ParseFloat(s); err == nil {
		return v
	}
	return def
}

// ParseError reports a value that failed to parse as the target type.
type ParseError struct {
	Value  string
	Target string
	cause  error
}

func (e *ParseError) Error() string {
	return "cannot parse " + strconv.Quote(e.Value) + " as " + e.Target
}

func (e *ParseError) Unwrap() error {
	return e.cause
}
