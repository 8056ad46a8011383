package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

// source is a stored record keyed by index field name.
type source map[string]json.RawMessage

func decodeSource(raw json.RawMessage) (source, error) {
	src := source{}
	if len(raw) == 0 {
		return src, nil
	}
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("invalid _source: %w", err)
	}
	return src, nil
}

func (s source) raw(key string) (json.RawMessage, bool) {
	v, ok := s[key]
	if !ok || bytes.Equal(v, []byte("null")) {
		return nil, false
	}
	return v, true
}

// text reads a string field. Numbers are accepted and kept in their literal form.
func (s source) text(key string) (string, bool, error) {
	v, ok := s.raw(key)
	if !ok {
		return "", false, nil
	}

	var str string
	if err := json.Unmarshal(v, &str); err == nil {
		return str, true, nil
	}
	var num json.Number
	if err := json.Unmarshal(v, &num); err == nil {
		return num.String(), true, nil
	}
	return "", false, fmt.Errorf("field %q is not a string", key)
}

func (s source) required(key string) (string, error) {
	v, ok, err := s.text(key)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", fmt.Errorf("missing required field %q", key)
	}
	return v, nil
}

func (s source) optional(key string) (*string, error) {
	v, ok, err := s.text(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func (s source) flag(key string) (*bool, error) {
	v, ok := s.raw(key)
	if !ok {
		return nil, nil
	}

	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return &b, nil
	}
	var str string
	if err := json.Unmarshal(v, &str); err == nil {
		if parsed, err := strconv.ParseBool(str); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("field %q is not a boolean", key)
}

// list reads an array of strings; a single string is read as a one-element list.
func (s source) list(key string) ([]string, error) {
	v, ok := s.raw(key)
	if !ok {
		return []string{}, nil
	}

	var values []string
	if err := json.Unmarshal(v, &values); err == nil {
		if values == nil {
			values = []string{}
		}
		return values, nil
	}
	var single string
	if err := json.Unmarshal(v, &single); err == nil {
		return []string{single}, nil
	}
	return nil, fmt.Errorf("field %q is not a list of strings", key)
}

func (s source) date(key string) (domain.Date, error) {
	v, err := s.required(key)
	if err != nil {
		return domain.Date{}, err
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		return domain.Date{}, fmt.Errorf("field %q: %w", key, err)
	}
	return d, nil
}

func (s source) timestamp(key string) (*time.Time, error) {
	v, ok, err := s.text(key)
	if err != nil || !ok || v == "" {
		return nil, err
	}
	t, err := domain.ParseTimestamp(v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return &t, nil
}
