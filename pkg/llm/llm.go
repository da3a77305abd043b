// Package llm defines the completion service used as an optional tie-breaker
// by the page classifier and the country resolver, and helpers to read JSON
// out of free-form model output.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -package mockllm -source=llm.go -destination=mock/mockllm.go *

// Completer sends a system instruction and a user payload and returns the raw completion text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrNoJSON is returned by DecodeJSON when the completion holds no JSON value.
var ErrNoJSON = errors.New("no JSON value in completion")

// DecodeJSON reads the first JSON object or array found in raw into v.
// Markdown code fences and text around the value are ignored; a value cut
// short by the token limit is an error.
func DecodeJSON(raw string, v any) error {
	s := unfence(raw)

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ErrNoJSON
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s[start:])))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("could not decode completion: %w", err)
	}

	return nil
}

// unfence returns the body of the first ``` block, or s when there is none.
// An unclosed fence yields everything after it.
func unfence(s string) string {
	open := strings.Index(s, "```")
	if open < 0 {
		return s
	}

	body := s[open+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:] // language tag
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}

	return body
}
