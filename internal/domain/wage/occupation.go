package wage

import (
	"fmt"
	"sort"
	"strings"
)

// Occupation is one supported SOC detailed occupation.
type Occupation struct {
	Slug  string
	Code  string
	Title string
}

var occupations = []Occupation{
	{Slug: "accountant", Code: "132011", Title: "Accountants and Auditors"},
	{Slug: "carpenter", Code: "472031", Title: "Carpenters"},
	{Slug: "cosmetologist", Code: "395012", Title: "Hairdressers, Hairstylists, and Cosmetologists"},
	{Slug: "data-scientist", Code: "152051", Title: "Data Scientists"},
	{Slug: "dental-assistant", Code: "319091", Title: "Dental Assistants"},
	{Slug: "dental-hygienist", Code: "292032", Title: "Dental Hygienists"},
	{Slug: "electrician", Code: "472111", Title: "Electricians"},
	{Slug: "elementary-school-teacher", Code: "252021", Title: "Elementary School Teachers, Except Special Education"},
	{Slug: "hvac-technician", Code: "499021", Title: "Heating, Air Conditioning, and Refrigeration Mechanics and Installers"},
	{Slug: "lawyer", Code: "231011", Title: "Lawyers"},
	{Slug: "licensed-practical-nurse", Code: "292061", Title: "Licensed Practical and Licensed Vocational Nurses"},
	{Slug: "massage-therapist", Code: "319011", Title: "Massage Therapists"},
	{Slug: "medical-assistant", Code: "319092", Title: "Medical Assistants"},
	{Slug: "nurse-practitioner", Code: "291171", Title: "Nurse Practitioners"},
	{Slug: "paralegal", Code: "232011", Title: "Paralegals and Legal Assistants"},
	{Slug: "pharmacist", Code: "291051", Title: "Pharmacists"},
	{Slug: "pharmacy-technician", Code: "292052", Title: "Pharmacy Technicians"},
	{Slug: "physical-therapist", Code: "291123", Title: "Physical Therapists"},
	{Slug: "physician-assistant", Code: "291071", Title: "Physician Assistants"},
	{Slug: "plumber", Code: "472152", Title: "Plumbers, Pipefitters, and Steamfitters"},
	{Slug: "real-estate-agent", Code: "419022", Title: "Real Estate Sales Agents"},
	{Slug: "registered-nurse", Code: "291141", Title: "Registered Nurses"},
	{Slug: "software-developer", Code: "151252", Title: "Software Developers"},
	{Slug: "truck-driver", Code: "533032", Title: "Heavy and Tractor-Trailer Truck Drivers"},
	{Slug: "web-developer", Code: "151254", Title: "Web Developers"},
	{Slug: "welder", Code: "514121", Title: "Welders, Cutters, Solderers, and Brazers"},
}

var (
	occupationsBySlug = make(map[string]Occupation, len(occupations))
	occupationsByCode = make(map[string]Occupation, len(occupations))
)

func init() {
	for _, occ := range occupations {
		if len(occ.Code) != occupationCodeWidth || !isDigits(occ.Code) {
			panic(fmt.Sprintf("wage: occupation %q has malformed code %q", occ.Slug, occ.Code))
		}
		if _, dup := occupationsBySlug[occ.Slug]; dup {
			panic(fmt.Sprintf("wage: duplicate occupation slug %q", occ.Slug))
		}
		if _, dup := occupationsByCode[occ.Code]; dup {
			panic(fmt.Sprintf("wage: duplicate occupation code %q", occ.Code))
		}
		occupationsBySlug[occ.Slug] = occ
		occupationsByCode[occ.Code] = occ
	}
}

// LookupOccupation resolves a slug such as "registered-nurse".
func LookupOccupation(slug string) (Occupation, error) {
	occ, ok := occupationsBySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Occupation{}, fmt.Errorf("%w: %q", ErrUnknownOccupation, slug)
	}
	return occ, nil
}

// OccupationByCode accepts both the dashed SOC form ("29-1141") and the
// compact form used inside series ids ("291141").
func OccupationByCode(code string) (Occupation, bool) {
	compact := strings.ReplaceAll(strings.TrimSpace(code), "-", "")
	occ, ok := occupationsByCode[compact]
	return occ, ok
}

// Occupations returns every supported occupation ordered by slug.
func Occupations() []Occupation {
	out := make([]Occupation, len(occupations))
	copy(out, occupations)
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// OccupationSlugs returns the supported slugs ordered alphabetically.
func OccupationSlugs() []string {
	out := make([]string, 0, len(occupations))
	for _, occ := range Occupations() {
		out = append(out, occ.Slug)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
