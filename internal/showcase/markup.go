package showcase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Props is a free-form prop set as edited in the showcase.
type Props map[string]any

type absent struct{}

func (absent) String() string { return "undefined" }

// Undefined marks a prop as explicitly absent. It is omitted from generated
// markup and unsets the key when merged over fixed props.
var Undefined any = absent{}

// IsUndefined reports whether v is the absence marker.
func IsUndefined(v any) bool {
	_, ok := v.(absent)
	return ok
}

// GenerateMarkup renders componentName and its props as a JSX-like element
// with one attribute per line, sorted by attribute name. fixedDisplay values
// are source fragments shown verbatim. The output is documentation only.
func GenerateMarkup(componentName string, editable Props, fixedDisplay map[string]string) string {
	type attribute struct {
		name string
		line string
	}

	attrs := make([]attribute, 0, len(editable)+len(fixedDisplay))
	for key, value := range editable {
		fragment, ok := formatValue(value)
		if !ok {
			continue
		}
		attrs = append(attrs, attribute{name: key, line: fmt.Sprintf("%s={%s}", key, fragment)})
	}
	for key, fragment := range fixedDisplay {
		attrs = append(attrs, attribute{name: key, line: fmt.Sprintf("%s={%s}", key, fragment)})
	}

	if len(attrs) == 0 {
		return fmt.Sprintf("<%s />", componentName)
	}

	sort.Slice(attrs, func(i, j int) bool {
		if attrs[i].name != attrs[j].name {
			return attrs[i].name < attrs[j].name
		}
		return attrs[i].line < attrs[j].line
	})

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(componentName)
	for _, attr := range attrs {
		b.WriteString("\n  ")
		b.WriteString(attr.line)
	}
	b.WriteString("\n/>")
	return b.String()
}

// formatValue returns the source fragment for value, or false when the prop
// is to be omitted.
func formatValue(value any) (string, bool) {
	if IsUndefined(value) {
		return "", false
	}

	switch v := value.(type) {
	case nil:
		return "null", true
	case string:
		return quote(v), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), true
	case json.Number:
		return v.String(), true
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		data, err := encodeJSON(value)
		if err != nil {
			return "/* Unserializable Object */", true
		}
		return data, true
	default:
		return fmt.Sprintf("/* Value of type %T */", value), true
	}
}

// quote renders s as a JSON string literal without HTML escaping.
func quote(s string) string {
	data, err := encodeJSON(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return data
}

// encodeJSON marshals value on one line, leaving <, > and & literal.
func encodeJSON(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// MergeProps overlays editable on fixed. Editable wins on collisions and an
// Undefined editable value removes the key.
func MergeProps(fixed, editable Props) Props {
	merged := make(Props, len(fixed)+len(editable))
	for key, value := range fixed {
		merged[key] = value
	}
	for key, value := range editable {
		if IsUndefined(value) {
			delete(merged, key)
			continue
		}
		merged[key] = value
	}
	return merged
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// jsonSafe drops absence markers and functions, recursing into nested maps and
// slices, so the remainder can be shown in the JSON editor.
func jsonSafe(value any) (any, bool) {
	if IsUndefined(value) {
		return nil, false
	}
	switch v := value.(type) {
	case Props:
		return jsonSafe(map[string]any(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if safe, ok := jsonSafe(item); ok {
				out[key] = safe
			}
		}
		return out, true
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if safe, ok := jsonSafe(item); ok {
				out = append(out, safe)
			}
		}
		return out, true
	}
	if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
		return nil, false
	}
	return value, true
}

// indentJSON renders props as two-space indented JSON for the editor.
func indentJSON(props Props) string {
	safe, _ := jsonSafe(props)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(safe); err != nil {
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}
