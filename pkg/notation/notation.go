// Package notation parses dice notation such as "2d6", "d20", "1d100" and
// "d%" into dice groups.
//
// Terms may be separated by spaces, commas or "+". Counts default to 1 and are
// bounded by domain.MaxDicePerGroup; at most domain.MaxGroups terms are accepted.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/tumble/pkg/domain"
)

// ErrSyntax is returned for terms that are not dice notation.
var ErrSyntax = errors.New("invalid dice notation")

var termPattern = regexp.MustCompile(`^(\d*)d(\d+|%)$`)

// Parse parses every term found in args.
func Parse(args ...string) ([]domain.DieGroup, error) {
	var terms []string
	for _, a := range args {
		terms = append(terms, split(a)...)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no dice", ErrSyntax)
	}
	if len(terms) > domain.MaxGroups {
		return nil, fmt.Errorf("%d groups: %w", len(terms), domain.ErrInventoryFull)
	}

	groups := make([]domain.DieGroup, 0, len(terms))
	for _, t := range terms {
		g, err := ParseTerm(t)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ParseTerm parses a single term like "3d8".
func ParseTerm(term string) (domain.DieGroup, error) {
	clean := strings.ToLower(strings.TrimSpace(term))
	m := termPattern.FindStringSubmatch(clean)
	if m == nil {
		return domain.DieGroup{}, fmt.Errorf("%q: %w", term, ErrSyntax)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > domain.MaxDicePerGroup {
			return domain.DieGroup{}, fmt.Errorf("%q: %w", term, domain.ErrInvalidCount)
		}
		count = n
	}

	kind, err := domain.ParseKind("d" + m[2])
	if err != nil {
		return domain.DieGroup{}, fmt.Errorf("%q: %w", term, err)
	}
	return domain.NewDieGroup(kind, count), nil
}

// Format renders groups back into notation, e.g. "2d6 d20".
func Format(groups []domain.DieGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Count == 1 {
			parts = append(parts, g.Label())
			continue
		}
		parts = append(parts, strconv.Itoa(g.Count)+g.Label())
	}
	return strings.Join(parts, " ")
}

func split(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '+' || r == '\t'
	})
}
