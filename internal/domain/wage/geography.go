package wage

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// NationalKey is the geography key for the nationwide aggregate.
	NationalKey = "national"
	// NationwideAreaCode is the reserved two-digit area code of the
	// nationwide aggregate.
	NationwideAreaCode = "00"
)

// Geography is either Nationwide or Regional. Nationwide is never stored as
// a geography row; dependent rows carry no geography reference instead.
type Geography interface {
	isGeography()
	String() string
}

type Nationwide struct{}

func (Nationwide) isGeography()   {}
func (Nationwide) String() string { return NationalKey }

// Regional is a state-level (City == "") or city-level area.
type Regional struct {
	State     string
	StateName string
	City      string
}

func (Regional) isGeography() {}

func (r Regional) String() string {
	if r.City == "" {
		return strings.ToLower(r.State)
	}
	return strings.ToLower(r.State) + "/" + r.City
}

// Slug derives the stable geography slug from the state code.
func (r Regional) Slug() string {
	if r.City == "" {
		return strings.ToLower(r.State)
	}
	return strings.ToLower(r.State) + "-" + strings.ToLower(strings.ReplaceAll(strings.TrimSpace(r.City), " ", "-"))
}

// Area binds a geography key to its series-id area code.
type Area struct {
	Key       string
	Code      string
	Geography Geography
}

func (a Area) IsNationwide() bool {
	_, ok := a.Geography.(Nationwide)
	return ok
}

type stateInfo struct {
	abbr string
	name string
	fips string
}

var states = []stateInfo{
	{"AL", "Alabama", "01"}, {"AK", "Alaska", "02"}, {"AZ", "Arizona", "04"},
	{"AR", "Arkansas", "05"}, {"CA", "California", "06"}, {"CO", "Colorado", "08"},
	{"CT", "Connecticut", "09"}, {"DE", "Delaware", "10"}, {"DC", "District of Columbia", "11"},
	{"FL", "Florida", "12"}, {"GA", "Georgia", "13"}, {"HI", "Hawaii", "15"},
	{"ID", "Idaho", "16"}, {"IL", "Illinois", "17"}, {"IN", "Indiana", "18"},
	{"IA", "Iowa", "19"}, {"KS", "Kansas", "20"}, {"KY", "Kentucky", "21"},
	{"LA", "Louisiana", "22"}, {"ME", "Maine", "23"}, {"MD", "Maryland", "24"},
	{"MA", "Massachusetts", "25"}, {"MI", "Michigan", "26"}, {"MN", "Minnesota", "27"},
	{"MS", "Mississippi", "28"}, {"MO", "Missouri", "29"}, {"MT", "Montana", "30"},
	{"NE", "Nebraska", "31"}, {"NV", "Nevada", "32"}, {"NH", "New Hampshire", "33"},
	{"NJ", "New Jersey", "34"}, {"NM", "New Mexico", "35"}, {"NY", "New York", "36"},
	{"NC", "North Carolina", "37"}, {"ND", "North Dakota", "38"}, {"OH", "Ohio", "39"},
	{"OK", "Oklahoma", "40"}, {"OR", "Oregon", "41"}, {"PA", "Pennsylvania", "42"},
	{"RI", "Rhode Island", "44"}, {"SC", "South Carolina", "45"}, {"SD", "South Dakota", "46"},
	{"TN", "Tennessee", "47"}, {"TX", "Texas", "48"}, {"UT", "Utah", "49"},
	{"VT", "Vermont", "50"}, {"VA", "Virginia", "51"}, {"WA", "Washington", "53"},
	{"WV", "West Virginia", "54"}, {"WI", "Wisconsin", "55"}, {"WY", "Wyoming", "56"},
	{"PR", "Puerto Rico", "72"},
}

var areasByKey = make(map[string]Area, len(states)+1)

func init() {
	areasByKey[NationalKey] = Area{Key: NationalKey, Code: NationwideAreaCode, Geography: Nationwide{}}
	for _, st := range states {
		key := strings.ToLower(st.abbr)
		if len(st.fips) != areaCodeWidth || !isDigits(st.fips) || st.fips == NationwideAreaCode {
			panic(fmt.Sprintf("wage: state %q has malformed area code %q", st.abbr, st.fips))
		}
		if _, dup := areasByKey[key]; dup {
			panic(fmt.Sprintf("wage: duplicate state %q", st.abbr))
		}
		areasByKey[key] = Area{
			Key:       key,
			Code:      st.fips,
			Geography: Regional{State: st.abbr, StateName: st.name},
		}
	}
}

// LookupGeography resolves "national" or a state abbreviation (any case).
func LookupGeography(key string) (Area, error) {
	area, ok := areasByKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Area{}, fmt.Errorf("%w: %q", ErrUnknownGeography, key)
	}
	return area, nil
}

// StateKeys returns every supported state key, sorted.
func StateKeys() []string {
	out := make([]string, 0, len(states))
	for _, st := range states {
		out = append(out, strings.ToLower(st.abbr))
	}
	sort.Strings(out)
	return out
}
