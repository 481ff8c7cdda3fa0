package usecase

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/actuallystonmai/content-catalog/internal/domain"
)

// Input is a decoded JSON object as received from a client.
type Input map[string]any

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldDuration   = "duration"
	FieldProvider   = "provider"
	FieldMediaType  = "media_type"
	FieldProviderID = "provider_id"
	FieldExpiresAt  = "expires_at"
)

var (
	// CreateFields are required when creating a content.
	CreateFields = []string{FieldID, FieldName, FieldDuration, FieldProvider, FieldMediaType, FieldProviderID, FieldExpiresAt}
	// UpdateFields are required when updating; the id comes from the path.
	UpdateFields = CreateFields[1:]
)

type ErrorKind string

const (
	KindMissing    ErrorKind = "missing"
	KindNotString  ErrorKind = "not_string"
	KindNotInteger ErrorKind = "not_integer"
)

type FieldError struct {
	Field string
	Kind  ErrorKind
}

func (e FieldError) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("%s is required", e.Field)
	case KindNotString:
		return fmt.Sprintf("%s must be a string", e.Field)
	case KindNotInteger:
		return fmt.Sprintf("%s must be an integer", e.Field)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

// MissingFields lists the fields that are absent or null in input.
func MissingFields(input Input, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if v, ok := input[f]; !ok || v == nil {
			missing = append(missing, f)
		}
	}
	return missing
}

// ParseContentFields validates all seven identifying fields.
func ParseContentFields(input Input) (domain.Fields, []FieldError) {
	p := parser{input: input}
	f := domain.Fields{ID: p.integer(FieldID)}
	p.fill(&f)
	return f, p.errs
}

// ParseUpdateFields validates the updatable fields and fixes the id to id.
func ParseUpdateFields(id int64, input Input) (domain.Fields, []FieldError) {
	p := parser{input: input}
	f := domain.Fields{ID: id}
	p.fill(&f)
	return f, p.errs
}

func messages(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

type parser struct {
	input Input
	errs  []FieldError
}

func (p *parser) fill(f *domain.Fields) {
	f.Name = p.str(FieldName)
	f.Duration = p.integer(FieldDuration)
	f.Provider = p.str(FieldProvider)
	f.MediaType = p.str(FieldMediaType)
	f.ProviderID = p.str(FieldProviderID)
	f.ExpiresAt = p.integer(FieldExpiresAt)
}

func (p *parser) lookup(field string) (any, bool) {
	v, ok := p.input[field]
	if !ok || v == nil {
		p.errs = append(p.errs, FieldError{Field: field, Kind: KindMissing})
		return nil, false
	}
	return v, true
}

func (p *parser) str(field string) string {
	v, ok := p.lookup(field)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.errs = append(p.errs, FieldError{Field: field, Kind: KindNotString})
	}
	return s
}

func (p *parser) integer(field string) int64 {
	v, ok := p.lookup(field)
	if !ok {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		p.errs = append(p.errs, FieldError{Field: field, Kind: KindNotInteger})
	}
	return n
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
