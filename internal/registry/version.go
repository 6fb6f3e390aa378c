package registry

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/ofkm/arcane-templates/internal/config"
	"github.com/ofkm/arcane-templates/internal/manifest"
)

// InitialVersion is the registry version used when nothing better is known.
const InitialVersion = "1.0.0"

// versionPattern accepts major.minor.patch with an optional ignored suffix
// introduced by "." or "-".
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:[.-].*)?$`)

// BumpSemver increments the given part of v. Bumping major resets minor and
// patch; bumping minor resets patch. Any suffix on v is dropped. If v does
// not start with major.minor.patch the result is InitialVersion. A component
// that does not fit in 64 bits is an error rather than a reset.
func BumpSemver(v string, part config.BumpPart) (string, error) {
	m := versionPattern.FindStringSubmatch(v)
	if m == nil {
		return InitialVersion, nil
	}

	var nums [3]uint64
	for i := range nums {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return "", fmt.Errorf("bumping version %q: component %q out of range", v, m[i+1])
		}
		nums[i] = n
	}

	cur := semver.New(nums[0], nums[1], nums[2], "", "")
	var next semver.Version
	switch part {
	case config.BumpMajor:
		next = cur.IncMajor()
	case config.BumpPatch:
		next = cur.IncPatch()
	default:
		next = cur.IncMinor()
	}
	return next.String(), nil
}

// VersionDecision records how the next registry version was chosen.
type VersionDecision struct {
	// Base is the version the decision started from.
	Base string
	// Next is the version to publish.
	Next string
	// NewIDs lists template ids absent from the previous registry, in scan order.
	NewIDs []string
	Part   config.BumpPart
}

// Bumped reports whether Next differs from Base because of new templates.
func (d VersionDecision) Bumped() bool {
	return len(d.NewIDs) > 0
}

// ResolveVersion picks the next registry version. The base is the previous
// registry's version, else fallback, else InitialVersion. The base is bumped
// by part only when ids contains templates the previous registry did not list.
func ResolveVersion(prev *manifest.PreviousRegistry, ids []string, fallback string, part config.BumpPart) (VersionDecision, error) {
	known := prev.IDs()
	var newIDs []string
	for _, id := range ids {
		if !known[id] {
			newIDs = append(newIDs, id)
		}
	}

	base := InitialVersion
	switch {
	case prev != nil && prev.Version != nil && *prev.Version != "":
		base = *prev.Version
	case fallback != "":
		base = fallback
	}

	d := VersionDecision{Base: base, Next: base, NewIDs: newIDs, Part: part}
	if d.Bumped() {
		next, err := BumpSemver(base, part)
		if err != nil {
			return VersionDecision{}, err
		}
		d.Next = next
	}
	return d, nil
}
