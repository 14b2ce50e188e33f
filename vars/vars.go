package vars

import "strings"

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func StrToBool(str string) bool {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
