package ingest

import (
	"reflect"
	"testing"

	"wagesync/internal/domain/wage"
)

func TestResolveSelection(t *testing.T) {
	defaults := []string{"registered-nurse", "electrician"}

	cases := []struct {
		name            string
		professions     []string
		allProfessions  bool
		states          []string
		allStates       bool
		wantOccupations []string
		wantGeographies []string
	}{
		{
			name:            "no flags",
			wantOccupations: defaults,
			wantGeographies: []string{wage.NationalKey},
		},
		{
			name:            "explicit lists are normalized and deduplicated",
			professions:     []string{" Plumber ,welder", "plumber"},
			states:          []string{"TX,ca", "tx", "national"},
			wantOccupations: []string{"plumber", "welder"},
			wantGeographies: []string{wage.NationalKey, "tx", "ca"},
		},
		{
			name:            "all flags win over lists",
			professions:     []string{"plumber"},
			allProfessions:  true,
			states:          []string{"tx"},
			allStates:       true,
			wantOccupations: wage.OccupationSlugs(),
			wantGeographies: append([]string{wage.NationalKey}, wage.StateKeys()...),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveSelection(tc.professions, tc.allProfessions, tc.states, tc.allStates, defaults)
			if err != nil {
				t.Fatalf("ResolveSelection() error = %v", err)
			}
			if !reflect.DeepEqual(got.Occupations, tc.wantOccupations) {
				t.Fatalf("occupations = %v, want %v", got.Occupations, tc.wantOccupations)
			}
			if !reflect.DeepEqual(got.Geographies, tc.wantGeographies) {
				t.Fatalf("geographies = %v, want %v", got.Geographies, tc.wantGeographies)
			}
			if got.Pairs() != len(tc.wantOccupations)*len(tc.wantGeographies) {
				t.Fatalf("Pairs() = %d", got.Pairs())
			}
		})
	}
}

func TestResolveSelectionKeepsUnknownValues(t *testing.T) {
	got, err := ResolveSelection([]string{"astronaut,welder", "Astronaut"}, false, []string{"gu,TX"}, false, nil)
	if err != nil {
		t.Fatalf("ResolveSelection() error = %v", err)
	}
	if want := []string{"astronaut", "welder"}; !reflect.DeepEqual(got.Occupations, want) {
		t.Fatalf("occupations = %v, want %v", got.Occupations, want)
	}
	if want := []string{wage.NationalKey, "gu", "tx"}; !reflect.DeepEqual(got.Geographies, want) {
		t.Fatalf("geographies = %v, want %v", got.Geographies, want)
	}

	if _, err := ResolveSelection(nil, false, nil, false, nil); err == nil {
		t.Fatalf("empty selection expected error")
	}
}
