package pvc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// sizeUnits lists the quantity suffixes that are understood, with the divisor
// that converts the number in front of them to GB. Gi is counted as a GB.
var sizeUnits = []struct {
	suffix  string
	divisor float64
}{
	{"gi", 1},
	{"mi", 1024},
	{"ki", 1024 * 1024},
}

// ParseStorageSize converts a storage quantity such as "10Gi", "500Mi" or "2Ki"
// to gigabytes. Suffixes are matched case-insensitively.
// Any other suffix, or no suffix at all, yields 0 without an error; a known
// suffix after something that is not a number is an error.
func ParseStorageSize(size string) (float64, error) {
	lower := strings.ToLower(size)
	for _, unit := range sizeUnits {
		if !strings.HasSuffix(lower, unit.suffix) {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(lower, unit.suffix)), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid storage size %q", size)
		}
		return value / unit.divisor, nil
	}
	return 0, nil
}
