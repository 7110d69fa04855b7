package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Parse decodes a raw request body into a Form based on the declared
// Content-Type.
//
// Dispatch rule:
//   - "application/json"    → a single JSON object; scalar values are
//     coerced to strings, nested values keep their compact JSON text.
//   - "multipart/form-data" → boundary extracted from the content-type
//     parameters, body handed to DecodeMultipart.
//   - anything else         → URL-encoded form data.
//
// A zero-length body always yields an empty Form, never an error.
func Parse(contentType string, body []byte) (*Form, error) {
	if len(body) == 0 {
		return NewForm(), nil
	}

	switch mediaType(contentType) {
	case "application/json":
		return parseJSON(body)
	case "multipart/form-data":
		return DecodeMultipart(body, boundaryParam(contentType))
	default:
		return parseURLEncoded(body)
	}
}

// mediaType returns the lowercased media type of a Content-Type header
// value, with any parameters stripped.
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// boundaryParam extracts the boundary parameter of a multipart content
// type, tolerating optional quotes. Returns "" when absent.
func boundaryParam(contentType string) string {
	for _, piece := range strings.Split(contentType, ";") {
		k, v, found := strings.Cut(strings.TrimSpace(piece), "=")
		if found && strings.EqualFold(k, "boundary") {
			return strings.Trim(v, `"`)
		}
	}

	return ""
}

// parseJSON decodes a single JSON object into a Form. Numbers keep their
// literal representation (no float round-tripping), booleans become
// "true"/"false", nulls are dropped, and nested objects or arrays are
// stored as their compact JSON text so nothing is silently lost.
func parseJSON(body []byte) (*Form, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var object map[string]any
	if err := dec.Decode(&object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// the body must be exactly one object, nothing after it
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidJSON)
	}

	f := NewForm()
	for name, value := range object {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			f.Values[name] = v
		case json.Number:
			f.Values[name] = v.String()
		case bool:
			if v {
				f.Values[name] = "true"
			} else {
				f.Values[name] = "false"
			}
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
			f.Values[name] = string(raw)
		}
	}

	return f, nil
}

// parseURLEncoded splits a URL-encoded body on '&' and '=' with
// percent-decoding. For repeated keys the first value wins. Pairs that fail
// to decode are skipped rather than failing the body.
func parseURLEncoded(body []byte) (*Form, error) {
	f := NewForm()
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		if _, seen := f.Values[key]; seen {
			continue
		}
		f.Values[key] = value
	}

	return f, nil
}
