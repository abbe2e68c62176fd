package priority

import (
	"strconv"
	"strings"
)

const (
	// DefaultQ is the quality of an item that has no q parameter.
	DefaultQ = 1.0

	// Unacceptable is the quality of an item whose q parameter cannot be
	// parsed, and of a candidate that the header does not mention.
	Unacceptable = -1.0
)

// ParseHeader parses header into a map from tokens to their qualities.
//
// Items that do not match the grammar described in ParseHeaderItem are
// silently dropped. If a token occurs more than once, the last occurrence
// wins. The returned map is never nil.
func ParseHeader(header string) map[string]float64 {
	prefs := make(map[string]float64)
	addItems(prefs, header)
	return prefs
}

// ParseHeaderValues is like ParseHeader but takes all lines of a header
// field, as found in one entry of an http.Header. The lines are treated as
// one comma-separated list, in order, except that each is trimmed separately.
func ParseHeaderValues(values []string) map[string]float64 {
	prefs := make(map[string]float64)
	for _, v := range values {
		addItems(prefs, v)
	}
	return prefs
}

func addItems(prefs map[string]float64, v string) {
	for _, item := range strings.Split(trim(v), ",") {
		if token, q, ok := ParseHeaderItem(item); ok {
			prefs[token] = q
		}
	}
}

// ParseHeaderItem parses one comma-separated item of a header. The item must
// match
//
//	^\s*([A-Za-z0-9/*-]+)\s*(;(.*))?$
//
// or else ok is false. The token is returned without surrounding whitespace.
// Parameters after the token are separated by ';' and have the form
// key=value. The first parameter whose key is exactly "q" gives the quality;
// without one, q is DefaultQ. Everything after the first '=' is the value,
// so q=0.5=1 is malformed. If the value is not a plain decimal float
// (or inf/nan), or overflows float64, q is Unacceptable.
// The value is not range-checked.
func ParseHeaderItem(item string) (token string, q float64, ok bool) {
	v := skipSpace(item)
	token, v = consumeToken(v)
	if token == "" {
		return "", 0, false
	}
	v = skipSpace(v)
	switch {
	case v == "":
		return token, DefaultQ, true
	case peek(v) == ';' && strings.IndexByte(v, '\n') == -1:
		return token, quality(v[1:]), true
	default:
		return "", 0, false
	}
}

func quality(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(trim(param), "=")
		if trim(key) != "q" {
			continue
		}
		if !found {
			return Unacceptable
		}
		value = trim(value)
		if !isPlainFloat(value) {
			return Unacceptable
		}
		q, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Unacceptable
		}
		return q
	}
	return DefaultQ
}
