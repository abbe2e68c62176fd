package priority

import "strings"

// whitespace is trimmed from the whole header and from each parameter.
// It is narrower than cSpace, which only applies around the item token.
const whitespace = " \t\n"

func trim(s string) string {
	return strings.Trim(s, whitespace)
}

func peek(v string) byte {
	if v == "" {
		return 0
	}
	return v[0]
}

func skipSpace(v string) string {
	for v != "" && byteClass[v[0]] == cSpace {
		v = v[1:]
	}
	return v
}

func consumeToken(v string) (tok, rest string) {
	i := 0
	for ; i < len(v); i++ {
		if byteClass[v[i]] != cToken {
			break
		}
	}
	return v[:i], v[i:]
}

// isPlainFloat rejects the Go-only number syntax that strconv.ParseFloat
// accepts: digit separators and hex mantissas or exponents.
func isPlainFloat(v string) bool {
	return strings.IndexAny(v, "_xXpP") == -1
}
