package resource

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their canonical JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize resolves every canonical field of the schema from body, then
// validates the populated row. Missing or null fields read as zero. Nothing
// about the row is persisted here.
func (s Schema) Normalize(hospitalID uint, body map[string]any) (models.ResourceRow, error) {
	row := s.NewRow(hospitalID)
	counters := row.Counters()

	for i, f := range s.Fields {
		raw, ok := lookup(body, f.Aliases)
		if !ok {
			*counters[i] = 0
			continue
		}
		n, err := toCount(raw)
		if err != nil {
			return nil, apperr.Invalid(f.Name, err.Error())
		}
		*counters[i] = n
	}

	if err := validate.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperr.Invalid(verrs[0].Field(), rangeReason(verrs[0].Tag()))
		}
		return nil, err
	}
	return row, nil
}

func lookup(body map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := body[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// toCount accepts finite whole JSON numbers. Range checks are left to the
// validator so negatives surface as "must be >= 0".
func toCount(raw any) (int, error) {
	var f float64
	switch v := raw.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return clampInt(i)
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, errors.New("must be a number")
		}
		f = parsed
	case float64:
		f = v
	case int:
		return clampInt(int64(v))
	case int64:
		return clampInt(v)
	default:
		return 0, errors.New("must be a number")
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("must be a finite number")
	}
	if f != math.Trunc(f) {
		return 0, errors.New("must be a whole number")
	}
	if f > math.MaxInt32 {
		return 0, errors.New("must be <= 2147483647")
	}
	if f < math.MinInt32 {
		return 0, errors.New("must be >= 0")
	}
	return int(f), nil
}

func clampInt(i int64) (int, error) {
	if i > math.MaxInt32 {
		return 0, errors.New("must be <= 2147483647")
	}
	if i < math.MinInt32 {
		return 0, errors.New("must be >= 0")
	}
	return int(i), nil
}

func rangeReason(tag string) string {
	switch tag {
	case "gte":
		return "must be >= 0"
	case "lte":
		return "must be <= 2147483647"
	default:
		return "is invalid"
	}
}
