package ingest

import (
	"errors"
	"strings"

	"wagesync/internal/domain/wage"
)

// Selection is the occupation x geography grid a sync walks.
type Selection struct {
	Occupations []string
	Geographies []string
}

func (s Selection) Pairs() int {
	return len(s.Occupations) * len(s.Geographies)
}

// ResolveSelection applies the sync flag semantics. Without profession
// flags the default list is used; without state flags only the nationwide
// aggregate is synced. The nationwide aggregate is always part of the grid.
// Values are normalized and deduplicated but not validated: an unknown slug
// or state fails its own pairs inside the sync loop.
func ResolveSelection(professions []string, allProfessions bool, states []string, allStates bool, defaults []string) (Selection, error) {
	occupations, err := resolveOccupations(professions, allProfessions, defaults)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Occupations: occupations, Geographies: resolveGeographies(states, allStates)}, nil
}

func resolveOccupations(professions []string, all bool, defaults []string) ([]string, error) {
	if all {
		return wage.OccupationSlugs(), nil
	}

	requested := splitList(professions)
	if len(requested) == 0 {
		requested = splitList(defaults)
	}
	if len(requested) == 0 {
		return nil, errors.New("no professions selected")
	}

	out := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, slug := range requested {
		if occ, err := wage.LookupOccupation(slug); err == nil {
			slug = occ.Slug
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out, nil
}

func resolveGeographies(states []string, all bool) []string {
	out := []string{wage.NationalKey}
	if all {
		return append(out, wage.StateKeys()...)
	}

	seen := map[string]struct{}{wage.NationalKey: {}}
	for _, key := range splitList(states) {
		if area, err := wage.LookupGeography(key); err == nil {
			key = area.Key
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// splitList accepts both repeated flags and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
