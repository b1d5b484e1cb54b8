// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/scorecast/internal/models"
)

// NonFieldErrors is the key under which cross-field violations are reported.
const NonFieldErrors = "non_field_errors"

// MaxDailyAllocation is the maximum of hours_studied + sleep_hours +
// ExtracurricularHours, inclusive.
const MaxDailyAllocation = 20.0

// ExtracurricularHours is the daily time charged for extracurricular activities.
const ExtracurricularHours = 2.0

// Messages returned for individual fields.
const (
	MsgRequired       = "This field is required."
	MsgNull           = "This field may not be null."
	MsgInvalidNumber  = "A valid number is required."
	MsgInvalidInteger = "A valid integer is required."
	MsgInvalidBoolean = "Must be a valid boolean."
	MsgZeroEffort     = "At least one of 'hours_studied' or 'sample_papers' should be greater than 0."
)

// FieldErrors is returned when a prediction payload is rejected. It maps a
// field name (or NonFieldErrors) to every message raised for it.
type FieldErrors struct {
	fields map[string][]string
}

// Add records msg against field.
func (e *FieldErrors) Add(field, msg string) {
	if e.fields == nil {
		e.fields = make(map[string][]string)
	}
	e.fields[field] = append(e.fields[field], msg)
}

// Len is the total number of messages.
func (e *FieldErrors) Len() int {
	n := 0
	for _, msgs := range e.fields {
		n += len(msgs)
	}
	return n
}

// Get returns the messages recorded for field.
func (e *FieldErrors) Get(field string) []string {
	return e.fields[field]
}

// Fields returns the failing field names in sorted order.
func (e *FieldErrors) Fields() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the messages keyed by field.
func (e *FieldErrors) Map() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, name := range e.Fields() {
		parts = append(parts, name+": "+strings.Join(e.fields[name], " "))
	}
	return "invalid prediction input: " + strings.Join(parts, "; ")
}

type numberRule struct {
	field   string
	min     float64
	max     float64
	bounded bool // max applies
	integer bool
}

var numberRules = map[string]numberRule{
	models.FieldHoursStudied:   {field: models.FieldHoursStudied, min: 0, max: 24, bounded: true},
	models.FieldPreviousScores: {field: models.FieldPreviousScores, min: 0, max: 100, bounded: true},
	models.FieldSleepHours:     {field: models.FieldSleepHours, min: 0, max: 24, bounded: true},
	models.FieldSamplePapers:   {field: models.FieldSamplePapers, min: 0, integer: true},
}

// ValidatePrediction turns a decoded JSON payload into a PredictionInput.
// Every field is checked and every cross-field rule whose operands are valid
// is evaluated, so the returned *FieldErrors lists all violations at once.
func ValidatePrediction(raw interface{}) (models.PredictionInput, error) {
	var in models.PredictionInput
	errs := &FieldErrors{}

	payload, ok := raw.(map[string]interface{})
	if !ok {
		errs.Add(NonFieldErrors, fmt.Sprintf("Invalid data. Expected a JSON object, but got %s.", jsonKind(raw)))
		return in, errs
	}

	hours, hoursOK := numberField(payload, numberRules[models.FieldHoursStudied], errs)
	prev, _ := numberField(payload, numberRules[models.FieldPreviousScores], errs)
	ext, extOK := boolField(payload, models.FieldExtracurricular, errs)
	sleep, sleepOK := numberField(payload, numberRules[models.FieldSleepHours], errs)
	papers, papersOK := integerField(payload, numberRules[models.FieldSamplePapers], errs)

	if hoursOK && papersOK && hours == 0 && papers == 0 {
		errs.Add(NonFieldErrors, MsgZeroEffort)
	}

	if hoursOK && sleepOK && extOK {
		extra := 0.0
		if ext {
			extra = ExtracurricularHours
		}
		if total := hours + sleep + extra; total > MaxDailyAllocation {
			errs.Add(NonFieldErrors, dailyAllocationMessage(hours, sleep, extra, total))
		}
	}

	if errs.Len() > 0 {
		return in, errs
	}

	in = models.PredictionInput{
		HoursStudied:    hours,
		PreviousScores:  prev,
		Extracurricular: ext,
		SleepHours:      sleep,
		SamplePapers:    int(papers),
	}
	return in, nil
}

func dailyAllocationMessage(hours, sleep, extra, total float64) string {
	return fmt.Sprintf(
		"The sum of hours_studied (%s), sleep_hours (%s) and extracurricular (~%s) is %s "+
			"which exceeds a recommended daily allocation of %d hours. "+
			"Please adjust values so they add up to %d hours or less.",
		formatDecimal(hours), formatDecimal(sleep), formatDecimal(extra),
		strconv.FormatFloat(total, 'f', 1, 64),
		int(MaxDailyAllocation), int(MaxDailyAllocation),
	)
}

// numberField coerces and range-checks one decimal field. The range check is
// delegated to the shared validator.
func numberField(payload map[string]interface{}, rule numberRule, errs *FieldErrors) (float64, bool) {
	v, ok := lookupField(payload, rule.field, errs)
	if !ok {
		return 0, false
	}
	f, ok := toFloat(v)
	if !ok {
		errs.Add(rule.field, MsgInvalidNumber)
		return 0, false
	}
	return f, checkRange(rule, f, errs)
}

// integerField is numberField for whole-number fields. Values beyond
// maxExactInteger in magnitude are not valid integers.
func integerField(payload map[string]interface{}, rule numberRule, errs *FieldErrors) (int64, bool) {
	v, ok := lookupField(payload, rule.field, errs)
	if !ok {
		return 0, false
	}
	n, ok := toInteger(v)
	if !ok {
		errs.Add(rule.field, MsgInvalidInteger)
		return 0, false
	}
	return n, checkRange(rule, n, errs)
}

func lookupField(payload map[string]interface{}, field string, errs *FieldErrors) (interface{}, bool) {
	v, present := payload[field]
	switch {
	case !present:
		errs.Add(field, MsgRequired)
		return nil, false
	case v == nil:
		errs.Add(field, MsgNull)
		return nil, false
	}
	return v, true
}

func checkRange(rule numberRule, value interface{}, errs *FieldErrors) bool {
	tag := "gte=" + formatBound(rule.min, false)
	if rule.bounded {
		tag += ",lte=" + formatBound(rule.max, false)
	}

	err := GetValidator().Var(value, tag)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		errs.Add(rule.field, MsgInvalidNumber)
		return false
	}
	switch fieldErrs[0].Tag() {
	case "lte":
		errs.Add(rule.field, "Ensure this value is less than or equal to "+formatBound(rule.max, !rule.integer)+".")
	default:
		errs.Add(rule.field, "Ensure this value is greater than or equal to "+formatBound(rule.min, !rule.integer)+".")
	}
	return false
}

func boolField(payload map[string]interface{}, field string, errs *FieldErrors) (bool, bool) {
	v, ok := lookupField(payload, field, errs)
	if !ok {
		return false, false
	}
	b, ok := toBool(v)
	if !ok {
		errs.Add(field, MsgInvalidBoolean)
	}
	return b, ok
}

// numberLike matches json.Number from either JSON package.
type numberLike interface {
	Float64() (float64, error)
	String() string
}

func toFloat(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case numberLike:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// trailingZeroDecimal strips an all-zero fraction so "5.0" is accepted as 5.
var trailingZeroDecimal = regexp.MustCompile(`\.0*\s*$`)

const maxExactInteger = 1 << 53

func toInteger(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return boundInteger(int64(x))
	case int64:
		return boundInteger(x)
	case float64:
		return floatToInteger(x)
	case float32:
		return floatToInteger(float64(x))
	case string:
		return parseIntegerString(x)
	case numberLike:
		return parseIntegerString(x.String())
	default:
		return 0, false
	}
}

func floatToInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxExactInteger {
		return 0, false
	}
	return int64(f), true
}

func parseIntegerString(s string) (int64, bool) {
	s = trailingZeroDecimal.ReplaceAllString(strings.TrimSpace(s), "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return boundInteger(n)
}

func boundInteger(n int64) (int64, bool) {
	if n > maxExactInteger || n < -maxExactInteger {
		return 0, false
	}
	return n, true
}

var (
	trueStrings  = map[string]bool{"t": true, "y": true, "yes": true, "true": true, "on": true, "1": true}
	falseStrings = map[string]bool{"f": true, "n": true, "no": true, "false": true, "off": true, "0": true}
)

func toBool(v interface{}) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if trueStrings[s] {
			return true, true
		}
		if falseStrings[s] {
			return false, true
		}
		return false, false
	default:
		f, ok := toFloat(v)
		if !ok {
			return false, false
		}
		switch f {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	}
}

// formatDecimal renders a float the way the rejection messages show values:
// shortest representation, always with a fractional part (5 -> "5.0").
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatBound(f float64, decimal bool) string {
	if decimal {
		return formatDecimal(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, numberLike:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
