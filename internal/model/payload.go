package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Payload field names as they appear on the wire and in the canonical encoding.
const (
	FieldBatchID          = "batchId"
	FieldOrigin           = "origin"
	FieldHarvestDate      = "harvestDate"
	FieldGrade            = "grade"
	FieldWeightKg         = "weightKg"
	FieldCertifications   = "certifications"
	FieldProcessingMethod = "processingMethod"
	FieldNotes            = "notes"
	FieldSubmitterID      = "submitterId"
	FieldSubmitterName    = "submitterName"
	FieldType             = "type"
)

// RequiredFields lists the fields every submitted payload must carry.
var RequiredFields = []string{FieldBatchID, FieldOrigin, FieldHarvestDate, FieldGrade, FieldWeightKg}

var reservedFields = map[string]struct{}{
	FieldBatchID:          {},
	FieldOrigin:           {},
	FieldHarvestDate:      {},
	FieldGrade:            {},
	FieldWeightKg:         {},
	FieldCertifications:   {},
	FieldProcessingMethod: {},
	FieldNotes:            {},
	FieldSubmitterID:      {},
	FieldSubmitterName:    {},
	FieldType:             {},
}

// ErrPayload is matched by every PayloadError.
var ErrPayload = errors.New("invalid payload")

// PayloadError describes a rejected payload field.
type PayloadError struct {
	Field  string
	Reason string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload field %q: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrPayload) hold for every PayloadError.
func (e *PayloadError) Is(target error) bool {
	return target == ErrPayload
}

// Payload is the certification record carried by a block. Extra holds optional domain fields
// that the ledger does not interpret; its values are scalars or arrays of scalars.
type Payload struct {
	Type             string
	BatchID          string
	Origin           string
	HarvestDate      string
	Grade            string
	WeightKg         float64
	Certifications   []string
	ProcessingMethod string
	Notes            string
	SubmitterID      string
	SubmitterName    string
	Extra            map[string]any
}

// ParsePayload validates raw submitted fields and converts them into a Payload. All problems
// are reported at once, joined, each matching ErrPayload.
func ParsePayload(raw map[string]any) (Payload, error) {
	var errs []error
	for _, field := range RequiredFields {
		v, ok := raw[field]
		if !ok || v == nil {
			errs = append(errs, &PayloadError{Field: field, Reason: "missing"})
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			errs = append(errs, &PayloadError{Field: field, Reason: "empty"})
		}
	}
	if len(errs) > 0 {
		return Payload{}, errors.Join(errs...)
	}

	p, err := fromMap(raw, true)
	if err != nil {
		return Payload{}, err
	}
	if p.Type == "" {
		p.Type = EntryTypeCoffee
	}
	return p, nil
}

// Fields returns the payload as a flat map. Zero-valued optional fields are omitted.
func (p Payload) Fields() map[string]any {
	out := make(map[string]any, len(p.Extra)+len(reservedFields))
	for k, v := range p.Extra {
		if items, ok := v.([]any); ok {
			v = append([]any(nil), items...)
		}
		out[k] = v
	}
	putString := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	putString(FieldType, p.Type)
	putString(FieldBatchID, p.BatchID)
	putString(FieldOrigin, p.Origin)
	putString(FieldHarvestDate, p.HarvestDate)
	putString(FieldGrade, p.Grade)
	putString(FieldProcessingMethod, p.ProcessingMethod)
	putString(FieldNotes, p.Notes)
	putString(FieldSubmitterID, p.SubmitterID)
	putString(FieldSubmitterName, p.SubmitterName)
	if p.WeightKg != 0 {
		out[FieldWeightKg] = p.WeightKg
	}
	if len(p.Certifications) > 0 {
		out[FieldCertifications] = append([]string(nil), p.Certifications...)
	}
	return out
}

// MarshalJSON encodes the payload as a JSON object with sorted keys.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

// UnmarshalJSON decodes a stored payload. Stored payloads are not re-validated against the
// submit rules: the genesis payload carries none of the required fields.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := decodeNumbers(data, &raw); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	parsed, err := fromMap(raw, false)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func fromMap(raw map[string]any, strict bool) (Payload, error) {
	var (
		p    Payload
		errs []error
	)

	stringField := func(key string, dst *string) {
		v, ok := raw[key]
		if !ok || v == nil {
			return
		}
		s, isString := v.(string)
		if !isString {
			errs = append(errs, &PayloadError{Field: key, Reason: fmt.Sprintf("expected string, got %T", v)})
			return
		}
		if strict {
			if !utf8.ValidString(s) {
				errs = append(errs, &PayloadError{Field: key, Reason: "invalid UTF-8"})
				return
			}
			s = strings.TrimSpace(s)
		}
		*dst = s
	}

	stringField(FieldType, &p.Type)
	stringField(FieldBatchID, &p.BatchID)
	stringField(FieldOrigin, &p.Origin)
	stringField(FieldHarvestDate, &p.HarvestDate)
	stringField(FieldGrade, &p.Grade)
	stringField(FieldProcessingMethod, &p.ProcessingMethod)
	stringField(FieldNotes, &p.Notes)
	stringField(FieldSubmitterID, &p.SubmitterID)
	stringField(FieldSubmitterName, &p.SubmitterName)

	if strict && p.Type != "" && p.Type != EntryTypeCoffee {
		errs = append(errs, &PayloadError{Field: FieldType, Reason: "reserved"})
	}

	if v, ok := raw[FieldWeightKg]; ok && v != nil {
		w, err := toFloat(v)
		switch {
		case err != nil:
			errs = append(errs, &PayloadError{Field: FieldWeightKg, Reason: err.Error()})
		case strict && w <= 0:
			errs = append(errs, &PayloadError{Field: FieldWeightKg, Reason: "must be positive"})
		default:
			p.WeightKg = w
		}
	}

	if v, ok := raw[FieldCertifications]; ok && v != nil {
		certs, err := toStrings(v)
		if err == nil && strict {
			err = checkUTF8(certs...)
		}
		if err != nil {
			errs = append(errs, &PayloadError{Field: FieldCertifications, Reason: err.Error()})
		} else if len(certs) > 0 {
			p.Certifications = certs
		}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if _, reserved := reservedFields[k]; !reserved {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, &PayloadError{Field: k, Reason: "empty field name"})
			continue
		}
		if strict && !utf8.ValidString(k) {
			errs = append(errs, &PayloadError{Field: strings.ToValidUTF8(k, "?"), Reason: "invalid UTF-8 field name"})
			continue
		}
		if strict {
			if err := checkExtraUTF8(raw[k]); err != nil {
				errs = append(errs, &PayloadError{Field: k, Reason: err.Error()})
				continue
			}
		}
		v, err := normalizeExtra(raw[k])
		if err != nil {
			errs = append(errs, &PayloadError{Field: k, Reason: err.Error()})
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any, len(keys))
		}
		p.Extra[k] = v
	}

	if len(errs) > 0 {
		return Payload{}, errors.Join(errs...)
	}
	return p, nil
}

// normalizeExtra checks that v is a scalar or an array of scalars and returns the value the
// JSON decoder would produce for it, so that in-memory and reloaded payloads hash identically.
func normalizeExtra(v any) (any, error) {
	switch tv := v.(type) {
	case []any:
		for _, item := range tv {
			if !isScalar(item) {
				return nil, fmt.Errorf("array items must be scalars, got %T", item)
			}
		}
	case map[string]any:
		return nil, errors.New("nested objects are not allowed")
	default:
		if !isScalar(v) && !isScalarSlice(v) {
			return nil, fmt.Errorf("unsupported value type %T", v)
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := decodeNumbers(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func isScalar(v any) bool {
	switch tv := v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(tv)) && !math.IsInf(float64(tv), 0)
	case float64:
		return !math.IsNaN(tv) && !math.IsInf(tv, 0)
	default:
		return false
	}
}

func isScalarSlice(v any) bool {
	switch v.(type) {
	case []string, []int, []int64, []float64, []bool:
		return true
	default:
		return false
	}
}

func toFloat(v any) (float64, error) {
	var f float64
	switch tv := v.(type) {
	case float64:
		f = tv
	case float32:
		f = float64(tv)
	case int:
		f = float64(tv)
	case int32:
		f = float64(tv)
	case int64:
		f = float64(tv)
	case uint:
		f = float64(tv)
	case uint32:
		f = float64(tv)
	case uint64:
		f = float64(tv)
	case json.Number:
		parsed, err := tv.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", tv.String())
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("must be finite")
	}
	return f, nil
}

func toStrings(v any) ([]string, error) {
	switch tv := v.(type) {
	case []string:
		return append([]string(nil), tv...), nil
	case []any:
		out := make([]string, 0, len(tv))
		for _, item := range tv {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string items, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected array of strings, got %T", v)
	}
}

// checkUTF8 rejects strings that encoding/json would rewrite with replacement characters.
// Such strings hash differently before and after a save.
func checkUTF8(items ...string) error {
	for _, s := range items {
		if !utf8.ValidString(s) {
			return errors.New("invalid UTF-8")
		}
	}
	return nil
}

func checkExtraUTF8(v any) error {
	switch tv := v.(type) {
	case string:
		return checkUTF8(tv)
	case []string:
		return checkUTF8(tv...)
	case []any:
		for _, item := range tv {
			if s, ok := item.(string); ok {
				if err := checkUTF8(s); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func decodeNumbers(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}
