package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts s to an integer, returning defaultVal when s is blank.
// A malformed value is reported instead of being replaced by the default.
func ToIntWithDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
