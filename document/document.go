// Package document decodes share documents into shamir shares.
//
// A document is either a JSON object
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2", "value": "111" }
//	}
//
// where the threshold may also be given as a top-level "k", or a binary
// bundle produced by EncodeBundle.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/izouxv/goShamir/shamir"
)

var (
	// ErrMissingThreshold is returned when no threshold field is present.
	ErrMissingThreshold = errors.New("missing threshold k")
	// ErrInvalidThreshold is returned when the threshold is not a positive integer.
	ErrInvalidThreshold = errors.New("invalid threshold k")
	// ErrMalformed is returned when the input is not a share document at all.
	ErrMalformed = errors.New("malformed share document")
)

// FieldError reports a problem with one top-level field of a document.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Document is a decoded share document.
type Document struct {
	// K is the threshold.
	K int
	// N is the advertised share count, zero when absent.
	N int
	// Shares are sorted ascending by index.
	Shares []*shamir.Share
}

type shareEntry struct {
	Base  *string `json:"base"`
	Value *string `json:"value"`
}

// Parse decodes a JSON document or a binary bundle.
func Parse(data []byte) (*Document, error) {
	if bytes.HasPrefix(data, bundleMagic) {
		return parseBundle(data)
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformed)
	}

	doc := &Document{}
	var k *int
	seen := make(map[string]string)

	for name, raw := range fields {
		switch name {
		case "keys":
			var keys map[string]json.RawMessage
			if err := json.Unmarshal(raw, &keys); err != nil || keys == nil {
				return nil, &FieldError{Field: name, Err: fmt.Errorf("%w: keys must be an object", ErrMalformed)}
			}
			if rawK, ok := keys["k"]; ok {
				v, err := parseInt(rawK)
				if err != nil || v < 1 {
					return nil, &FieldError{Field: "keys.k", Err: ErrInvalidThreshold}
				}
				if k != nil && *k != v {
					return nil, &FieldError{Field: "keys.k", Err: fmt.Errorf("%w: conflicts with k = %d", ErrInvalidThreshold, *k)}
				}
				k = &v
			}
			if rawN, ok := keys["n"]; ok {
				v, err := parseInt(rawN)
				if err != nil || v < 0 {
					return nil, &FieldError{Field: "keys.n", Err: fmt.Errorf("%w: n must be a non-negative integer", ErrMalformed)}
				}
				doc.N = v
			}
		case "k":
			v, err := parseInt(raw)
			if err != nil || v < 1 {
				return nil, &FieldError{Field: name, Err: ErrInvalidThreshold}
			}
			if k != nil && *k != v {
				return nil, &FieldError{Field: name, Err: fmt.Errorf("%w: conflicts with keys.k = %d", ErrInvalidThreshold, *k)}
			}
			k = &v
		default:
			share, err := parseShare(name, raw)
			if err != nil {
				return nil, &FieldError{Field: name, Err: err}
			}
			idx := share.X.String()
			if other, dup := seen[idx]; dup {
				return nil, &FieldError{Field: name, Err: fmt.Errorf("%w: index %s also given as %q", shamir.ErrInvalidShare, idx, other)}
			}
			seen[idx] = name
			doc.Shares = append(doc.Shares, share)
		}
	}

	if k == nil {
		return nil, ErrMissingThreshold
	}
	doc.K = *k
	shamir.SortShares(doc.Shares)
	return doc, nil
}

func parseShare(name string, raw json.RawMessage) (*shamir.Share, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var entry shareEntry
	if err := dec.Decode(&entry); err != nil {
		return nil, fmt.Errorf("%w: %v", shamir.ErrInvalidShare, err)
	}
	if entry.Base == nil {
		return nil, fmt.Errorf("%w: missing base", shamir.ErrInvalidShare)
	}
	if entry.Value == nil {
		return nil, fmt.Errorf("%w: missing value", shamir.ErrInvalidShare)
	}
	return shamir.DecodeShare(name, *entry.Base, *entry.Value)
}

// parseInt accepts a JSON integer literal only.
func parseInt(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("not a number: %s", raw)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, err
	}
	if int64(int(i)) != i {
		return 0, fmt.Errorf("out of range: %s", n)
	}
	return int(i), nil
}
