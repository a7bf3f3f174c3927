package body

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// unresolvedMarker appears in provisional designations such as "S/2004 S 12",
// which have no recognizable English name.
const unresolvedMarker = "S/"

// RawMass is the nested mass object of a raw record.
type RawMass struct {
	MassValue    *float64 `json:"massValue" toml:"massValue,omitempty" validate:"required"`
	MassExponent *int     `json:"massExponent" toml:"massExponent,omitempty" validate:"required"`
}

// RawBody mirrors one entry of the "bodies" array served by the Solar System
// OpenData API. Pointer fields distinguish a missing value from zero.
type RawBody struct {
	EnglishName   *string  `json:"englishName" toml:"englishName,omitempty" validate:"required"`
	SemimajorAxis *float64 `json:"semimajorAxis" toml:"semimajorAxis,omitempty" validate:"required"`
	Eccentricity  *float64 `json:"eccentricity" toml:"eccentricity,omitempty" validate:"required"`
	Mass          *RawMass `json:"mass" toml:"mass,omitempty" validate:"required"`
	Gravity       *float64 `json:"gravity" toml:"gravity,omitempty" validate:"required"`
	MeanRadius    *float64 `json:"meanRadius" toml:"meanRadius,omitempty" validate:"required"`
	BodyType      *string  `json:"bodyType" toml:"bodyType,omitempty" validate:"required"`
}

// Normalizer converts raw records into Bodies.
type Normalizer struct {
	validate *validator.Validate
}

// NewNormalizer returns a Normalizer whose validation errors name fields by
// their JSON keys.
func NewNormalizer() *Normalizer {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Normalizer{validate: v}
}

// Normalize validates raw and returns the corresponding Body. Records with a
// missing field, an unresolved designation, or a non-positive mass yield a
// *MalformedRecordError.
func (n *Normalizer) Normalize(raw RawBody) (Body, error) {
	var name string
	if raw.EnglishName != nil {
		name = *raw.EnglishName
	}

	if err := n.validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Body{}, &MalformedRecordError{Name: name, Field: verrs[0].Field(), Reason: "missing"}
		}
		return Body{}, fmt.Errorf("validating %q: %w", name, err)
	}

	if strings.Contains(name, unresolvedMarker) {
		return Body{}, &MalformedRecordError{Name: name, Field: "englishName", Reason: "unresolved provisional designation"}
	}

	mass, ok := NormalizeMass(*raw.Mass.MassValue, *raw.Mass.MassExponent)
	if !ok {
		return Body{}, &MalformedRecordError{Name: name, Field: "massValue", Reason: "not a positive finite number"}
	}

	return New(cleanName(name), Kind(*raw.BodyType), Stats{
		SemimajorAxis: *raw.SemimajorAxis,
		Eccentricity:  *raw.Eccentricity,
		Gravity:       *raw.Gravity,
		MeanRadius:    *raw.MeanRadius,
		Mass:          mass,
	}), nil
}

// NormalizeAll normalizes every record, silently dropping the unusable ones.
// It returns the surviving bodies in source order and the number skipped.
func (n *Normalizer) NormalizeAll(raws []RawBody) ([]Body, int) {
	bodies := make([]Body, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		b, err := n.Normalize(raw)
		if err != nil {
			skipped++
			continue
		}
		bodies = append(bodies, b)
	}
	return bodies, skipped
}

// NormalizeMass shifts value into [1, 10), adjusting exponent to keep the
// magnitude, and rounds a shifted mantissa to three decimals. A mantissa that
// is already in range is returned untouched. Non-positive or non-finite values
// cannot be normalized and report false.
func NormalizeMass(value float64, exponent int) (Mass, bool) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Mass{}, false
	}
	if value >= 1 && value < 10 {
		return Mass{Mantissa: value, Exponent: exponent}, true
	}
	for value >= 10 {
		value /= 10
		exponent++
	}
	for value < 1 {
		value *= 10
		exponent--
	}
	value = math.Round(value*1000) / 1000
	// 9.9996 rounds up to 10.
	if value >= 10 {
		value /= 10
		exponent++
	}
	return Mass{Mantissa: value, Exponent: exponent}, true
}

// cleanName strips the numeric prefix carried by numbered minor bodies,
// e.g. "1 Ceres" becomes "Ceres".
func cleanName(name string) string {
	return strings.TrimLeft(name, "0123456789 ")
}
