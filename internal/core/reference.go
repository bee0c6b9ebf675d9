package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mandate/internal/sepatext"
)

// Mandate references are capped by the SEPA mandate identifier length.
const MaxReferenceLength = 35

// The two-digit +NN suffix cannot count past 99 successors.
const maxSequence = 99

var (
	trailingYear = regexp.MustCompile(`(\d{4})$`)
	trailingSeq  = regexp.MustCompile(`\+(\d{2})$`)
	refLetter    = regexp.MustCompile(`[A-Za-z]`)
	refKeep      = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// GenerateReference builds the unique mandate reference for a project and
// musician pair:
//
//	{projectId:04}-{musicianId:04}-{initials}-{name fragment}{year}{+NN}
//
// A trailing 4-digit year in the project name becomes part of the tail; when
// a prior reference exists its +NN sequence suffix is incremented (or +01
// appended) so a successor never reuses the prior reference. The suffix ends
// at +99; past that, generation fails rather than widen the format. The project
// name fragment is truncated so the whole reference fits 35 characters, with
// the tail taking priority. Whitespace becomes X and the result is
// upper-cased.
func GenerateReference(project Project, musician Musician, priorReference string) (string, error) {
	initials := initialOf(musician.FirstName) + initialOf(musician.LastName)
	if len(initials) != 2 {
		return "", fmt.Errorf("%w: musician %d has no resolvable name", ErrReferenceGeneration, musician.ID)
	}

	name := sepatext.Transliterate(strings.TrimSpace(project.Name))
	if name == "" {
		return "", fmt.Errorf("%w: project %d has no resolvable name", ErrReferenceGeneration, project.ID)
	}

	prefix := fmt.Sprintf("%04d-%04d-%s-", project.ID, musician.ID, initials)

	tail := ""
	if m := trailingYear.FindStringSubmatch(name); m != nil {
		tail = m[1]
		name = name[:len(name)-4]
	}

	if priorReference != "" {
		seq := 1
		if m := trailingSeq.FindStringSubmatch(priorReference); m != nil {
			prior, _ := strconv.Atoi(m[1])
			seq = prior + 1
		}
		if seq > maxSequence {
			return "", fmt.Errorf("%w: successor sequence exhausted at +%02d for %s", ErrReferenceGeneration, maxSequence, priorReference)
		}
		tail += fmt.Sprintf("+%02d", seq)
	}

	fragment := refKeep.ReplaceAllString(strings.ReplaceAll(name, " ", "X"), "")

	budget := MaxReferenceLength - len(prefix) - len(tail)
	if budget < 0 {
		return "", fmt.Errorf("%w: identity tail exceeds %d characters", ErrReferenceGeneration, MaxReferenceLength)
	}
	if len(fragment) > budget {
		fragment = fragment[:budget]
	}

	return strings.ToUpper(prefix + fragment + tail), nil
}

// initialOf returns the first transliterated letter of a name, or "" when
// none exists.
func initialOf(name string) string {
	return refLetter.FindString(sepatext.Transliterate(strings.TrimSpace(name)))
}
