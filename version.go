package dropbox

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the Dropbox API version the endpoint catalogue was built
// against. Every route is served under the /2/ path prefix.
const APIVersion = "2.0.0"

// APIVersionRange is the semver constraint of API versions this SDK works
// with.
const APIVersionRange = ">= 2.0.0, < 3.0.0"

// CompatibilityStatus is the outcome of a version check.
type CompatibilityStatus int

const (
	// Unknown means the version could not be parsed.
	Unknown CompatibilityStatus = iota
	Compatible
	Incompatible
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	}
	return "unknown"
}

// CompatibilityResult describes how an API version relates to this SDK.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible reports whether Status is Compatible.
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

var apiConstraint = mustConstraint(APIVersionRange)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(fmt.Sprintf("dropbox: invalid version constraint %q: %v", s, err))
	}
	return c
}

// CheckCompatibility checks version against APIVersionRange. Pre-release
// suffixes are ignored, so "2.1.0-beta" is treated as "2.1.0".
func CheckCompatibility(version string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    version,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.StrictNewVersion(version)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse API version %q: %v", version, err)
		return result
	}

	release, err := v.SetPrerelease("")
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse API version %q: %v", version, err)
		return result
	}

	if apiConstraint.Check(&release) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("API version %s is compatible with SDK %s", version, Version)
		return result
	}

	result.Status = Incompatible
	result.Message = fmt.Sprintf("API version %s is not compatible with SDK %s (supported: %s)",
		version, Version, APIVersionRange)
	return result
}

// IsCompatible reports whether version is within APIVersionRange.
func IsCompatible(version string) bool {
	return CheckCompatibility(version).IsCompatible()
}

// MustBeCompatible panics unless version is within APIVersionRange.
func MustBeCompatible(version string) {
	result := CheckCompatibility(version)
	if !result.IsCompatible() {
		panic("dropbox: " + result.Message)
	}
}
