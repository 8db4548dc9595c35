// Package slugify derives URL-safe, unique identifiers from titles.
package slugify

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Candidate normalizes a title into a slug candidate: lowercase, accents
// stripped, runs of non-alphanumerics collapsed to a single hyphen, and
// leading/trailing hyphens trimmed. slug.Make keeps underscores, so those
// are folded to hyphens up front to hold the charset to [a-z0-9-].
func Candidate(title string) string {
	return slug.Make(strings.ReplaceAll(title, "_", "-"))
}

// Unique returns the candidate itself if unused, otherwise the first free
// value among candidate-1, candidate-2, ... The probe is unbounded; it
// terminates because the suffixed namespace is infinite and exists covers a
// finite set. Errors from exists abort the probe.
func Unique(candidate string, exists func(string) (bool, error)) (string, error) {
	taken, err := exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	for i := 1; ; i++ {
		probe := fmt.Sprintf("%s-%d", candidate, i)
		taken, err := exists(probe)
		if err != nil {
			return "", err
		}
		if !taken {
			return probe, nil
		}
	}
}
