package wage

import (
	"errors"
	"strings"
	"testing"
)

func TestSeriesIDsForOccupationRoundTrip(t *testing.T) {
	keys := append([]string{NationalKey}, StateKeys()...)
	for _, occ := range Occupations() {
		for _, key := range keys {
			ids, err := SeriesIDsForOccupation(occ.Slug, key)
			if err != nil {
				t.Fatalf("SeriesIDsForOccupation(%q, %q) error = %v", occ.Slug, key, err)
			}
			if len(ids) != 13 {
				t.Fatalf("SeriesIDsForOccupation(%q, %q) len = %d", occ.Slug, key, len(ids))
			}

			seen := make(map[Measure]bool, len(ids))
			for _, id := range ids {
				m, err := DecodeMeasure(id)
				if err != nil {
					t.Fatalf("DecodeMeasure(%q) error = %v", id, err)
				}
				if seen[m] {
					t.Fatalf("duplicate measure %s for %s/%s", m, occ.Slug, key)
				}
				seen[m] = true
			}
			for _, m := range Measures() {
				if !seen[m] {
					t.Fatalf("missing measure %s for %s/%s", m, occ.Slug, key)
				}
			}
		}
	}
}

func TestEncodeSeriesIDLayouts(t *testing.T) {
	national := EncodeSeriesID(NationwideAreaCode, "291141", MeasureAnnualMedian)
	if national != "OEUN000000000000029114107" {
		t.Fatalf("nationwide id = %q", national)
	}
	if len(national) != SeriesIDLength {
		t.Fatalf("nationwide id length = %d", len(national))
	}

	regional := EncodeSeriesID("06", "291141", MeasureEmployment)
	if regional != "OEUS060000000000029114103" {
		t.Fatalf("regional id = %q", regional)
	}
	if len(regional) != SeriesIDLength {
		t.Fatalf("regional id length = %d", len(regional))
	}
	if !strings.HasPrefix(regional, "OEUS06") {
		t.Fatalf("regional id prefix = %q", regional[:6])
	}
}

func TestEncodeSeriesIDPanicsOnMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		area string
		occ  string
		m    Measure
	}{
		{name: "short area", area: "6", occ: "291141", m: MeasureEmployment},
		{name: "dashed occupation", area: "06", occ: "29-1141", m: MeasureEmployment},
		{name: "long measure", area: "06", occ: "291141", m: Measure("100")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("EncodeSeriesID() expected panic")
				}
			}()
			_ = EncodeSeriesID(tc.area, tc.occ, tc.m)
		})
	}
}

func TestSeriesIDsForOccupationUnknownCodes(t *testing.T) {
	if _, err := SeriesIDsForOccupation("not-a-real-job", NationalKey); !errors.Is(err, ErrUnknownOccupation) {
		t.Fatalf("unknown occupation error = %v", err)
	}
	if _, err := SeriesIDsForOccupation("registered-nurse", "zz"); !errors.Is(err, ErrUnknownGeography) {
		t.Fatalf("unknown geography error = %v", err)
	}
}

func TestDecodeMeasureRejectsMalformedIDs(t *testing.T) {
	if _, err := DecodeMeasure("OEUN00"); !errors.Is(err, ErrInvalidSeriesID) {
		t.Fatalf("short id error = %v", err)
	}
	if _, err := DecodeMeasure("OEUN000000000000029114199"); !errors.Is(err, ErrUnknownMeasure) {
		t.Fatalf("unknown suffix error = %v", err)
	}
}

func TestLookupGeographyIsCaseInsensitive(t *testing.T) {
	area, err := LookupGeography("CA")
	if err != nil {
		t.Fatalf("LookupGeography() error = %v", err)
	}
	reg, ok := area.Geography.(Regional)
	if !ok {
		t.Fatalf("LookupGeography() geography = %T", area.Geography)
	}
	if reg.StateName != "California" || area.Code != "06" || reg.Slug() != "ca" {
		t.Fatalf("LookupGeography() = %+v", area)
	}

	national, err := LookupGeography("National")
	if err != nil {
		t.Fatalf("LookupGeography(national) error = %v", err)
	}
	if !national.IsNationwide() {
		t.Fatalf("national area is not nationwide")
	}
}

func TestOccupationByCodeAcceptsDashedForm(t *testing.T) {
	occ, ok := OccupationByCode("29-1141")
	if !ok || occ.Slug != "registered-nurse" {
		t.Fatalf("OccupationByCode() = %+v, %v", occ, ok)
	}
	if _, ok := OccupationByCode("00-0000"); ok {
		t.Fatalf("OccupationByCode(all occupations) expected miss")
	}
}
