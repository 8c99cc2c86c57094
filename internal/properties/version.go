package properties

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is an Oracle client version such as 11.2.0.4.0.
type Version struct {
	Major       int
	Minor       int
	Update      int
	PortRelease int
	PortUpdate  int
}

// StatementCacheMinVersion is the first client version with statement caching (Oracle 9iR2).
var StatementCacheMinVersion = Version{Major: 9, Minor: 2}

// ParseVersion parses a dotted version string.
// Missing trailing components are zero; more than five components are rejected.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 5 {
		return Version{}, fmt.Errorf("invalid version %q: too many components", s)
	}

	var nums [5]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", s, p)
		}
		nums[i] = n
	}

	return Version{
		Major:       nums[0],
		Minor:       nums[1],
		Update:      nums[2],
		PortRelease: nums[3],
		PortUpdate:  nums[4],
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to or greater than w.
func (v Version) Compare(w Version) int {
	return cmp.Or(
		cmp.Compare(v.Major, w.Major),
		cmp.Compare(v.Minor, w.Minor),
		cmp.Compare(v.Update, w.Update),
		cmp.Compare(v.PortRelease, w.PortRelease),
		cmp.Compare(v.PortUpdate, w.PortUpdate),
	)
}

// Less reports whether v is older than w.
func (v Version) Less(w Version) bool {
	return v.Compare(w) < 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", v.Major, v.Minor, v.Update, v.PortRelease, v.PortUpdate)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
