package model

// All lists every table managed by the schema migration, parents first.
func All() []any {
	return []any{
		&Geography{},
		&WageStatistic{},
		&IndustryEmployment{},
	}
}
