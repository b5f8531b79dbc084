// Package envelope decodes the Urban Cabz API response envelope. The API wraps every
// payload as {success, message, data} but nests list payloads inconsistently, so list
// extraction walks a fixed fallback chain instead of trusting one shape.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the uniform wrapper of every API response. Body keeps the whole parsed
// response, which list extraction starts from.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Body    json.RawMessage `json:"-"`
}

// Failed reports whether the API explicitly answered success: false
func (e *Envelope) Failed() bool {
	return e.Success != nil && !*e.Success
}

// Decode parses a response body into its envelope. A bare JSON array is a valid
// body; it becomes the envelope's data.
func Decode(body []byte) (*Envelope, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))
	if isArray(raw) {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("decode envelope: invalid JSON array")
		}
		return &Envelope{Data: raw, Body: raw}, nil
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	env.Body = raw
	return &env, nil
}

var emptyList = json.RawMessage("[]")

// UnwrapList returns the JSON array held by body, trying in order the body itself,
// body.data, body.data.data, body.<entity>, body.data.<entity>,
// body.data.data.<entity>, and finally an empty list.
func UnwrapList(body []byte, entity string) (json.RawMessage, error) {
	env, err := Decode(body)
	if err != nil {
		return nil, err
	}
	return ListFromBody(env.Body, entity), nil
}

// ListFromBody applies the fallback chain to an already decoded response body
func ListFromBody(body json.RawMessage, entity string) json.RawMessage {
	data := field(body, "data")
	inner := field(data, "data")

	candidates := []json.RawMessage{body, data, inner}
	if entity != "" {
		candidates = append(candidates, field(body, entity), field(data, entity), field(inner, entity))
	}
	for _, candidate := range candidates {
		if isArray(candidate) {
			return candidate
		}
	}
	return emptyList
}

// DecodeList unwraps the list held by body and decodes it into a slice of T
func DecodeList[T any](body []byte, entity string) ([]T, error) {
	raw, err := UnwrapList(body, entity)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", entity, err)
	}
	return items, nil
}

// UnwrapObject returns data.<entity> when present, else data
func UnwrapObject(data json.RawMessage, entity string) json.RawMessage {
	if entity != "" {
		if obj := field(data, entity); isObject(obj) {
			return obj
		}
	}
	return data
}

func field(raw json.RawMessage, name string) json.RawMessage {
	if !isObject(raw) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields[name]
}

func isArray(raw json.RawMessage) bool {
	return firstByte(raw) == '['
}

func isObject(raw json.RawMessage) bool {
	return firstByte(raw) == '{'
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
