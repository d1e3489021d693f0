package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSON binds the request body into the target struct. Requests without a body
// report ErrNotApplicable so the binder can be stacked with Path and Query.
// Bodies with a non-JSON content type are rejected, as are bodies with
// trailing data after the JSON document.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Body == nil || r.ContentLength == 0 {
			return ErrNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
			contentType = strings.TrimSpace(contentType[:idx])
		}
		if contentType != "" && contentType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Reject trailing garbage after the document.
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
		}
		return nil
	}
}
