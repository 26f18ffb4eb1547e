// Package codec converts request and response bodies to and from the wire.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moip/moip-sdk-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrEmptyBody       = errors.New("empty response body")
	ErrUnsupportedKind = errors.New("unsupported content kind")
)

// ContentKind selects how a request body is encoded.
type ContentKind int

const (
	// JSON encodes bodies as application/json. It is the default.
	JSON ContentKind = iota
	// Form encodes bodies as application/x-www-form-urlencoded.
	Form
)

// MIMEType returns the Content-Type header value of the kind.
func (k ContentKind) MIMEType() string {
	if k == Form {
		return constants.ContentTypeForm
	}

	return constants.ContentTypeJSON
}

// String implements fmt.Stringer.
func (k ContentKind) String() string {
	switch k {
	case JSON:
		return "json"
	case Form:
		return "form"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Encode serializes v according to kind. Unset optional fields are omitted
// through the omitempty tags of the request types.
func Encode(v interface{}, kind ContentKind) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", kind, err)
	}

	switch kind {
	case JSON:
		return data, nil
	case Form:
		values, err := Flatten(data)
		if err != nil {
			return nil, err
		}

		return []byte(values.Encode()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// Flatten turns a JSON document into form values. Nested object keys are
// joined with ".", array elements are addressed by index and nulls are
// skipped, so {"a":{"b":1},"c":[2,3]} becomes a.b=1&c.0=2&c.1=3.
func Flatten(data []byte) (url.Values, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var document interface{}

	err := decoder.Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("flattening form body: %w", err)
	}

	values := url.Values{}
	flatten(values, "", document)

	return values, nil
}

func flatten(values url.Values, prefix string, node interface{}) {
	switch typed := node.(type) {
	case nil:
		return
	case map[string]interface{}:
		for key, child := range typed {
			flatten(values, join(prefix, key), child)
		}
	case []interface{}:
		for i, child := range typed {
			flatten(values, join(prefix, strconv.Itoa(i)), child)
		}
	case json.Number:
		values.Add(prefix, typed.String())
	case string:
		values.Add(prefix, typed)
	case bool:
		values.Add(prefix, strconv.FormatBool(typed))
	default:
		values.Add(prefix, fmt.Sprint(typed))
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// Decode parses a JSON response body into v. Unknown fields are ignored and
// missing fields keep their zero value. An empty or null body is ErrEmptyBody.
func Decode(data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyBody
	}

	err := json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("decoding JSON body: %w", err)
	}

	return nil
}
