package oes

// Row is one line of the OES all-data dump. Column names follow the
// publication's header; decoders upper-case headers before matching.
type Row struct {
	Area        string `csv:"AREA"`
	AreaTitle   string `csv:"AREA_TITLE"`
	AreaType    string `csv:"AREA_TYPE"`
	PrimState   string `csv:"PRIM_STATE"`
	NAICS       string `csv:"NAICS"`
	NAICSTitle  string `csv:"NAICS_TITLE"`
	IndustryGrp string `csv:"I_GROUP"`
	OwnCode     string `csv:"OWN_CODE"`
	OccCode     string `csv:"OCC_CODE"`
	OccTitle    string `csv:"OCC_TITLE"`
	OccGroup    string `csv:"O_GROUP"`

	TotEmp      string `csv:"TOT_EMP"`
	EmpPRSE     string `csv:"EMP_PRSE"`
	Jobs1000    string `csv:"JOBS_1000"`
	LocQuotient string `csv:"LOC_QUOTIENT"`
	PctTotal    string `csv:"PCT_TOTAL"`
	PctRpt      string `csv:"PCT_RPT"`

	HMean    string `csv:"H_MEAN"`
	AMean    string `csv:"A_MEAN"`
	MeanPRSE string `csv:"MEAN_PRSE"`
	HPct10   string `csv:"H_PCT10"`
	HPct25   string `csv:"H_PCT25"`
	HMedian  string `csv:"H_MEDIAN"`
	HPct75   string `csv:"H_PCT75"`
	HPct90   string `csv:"H_PCT90"`
	APct10   string `csv:"A_PCT10"`
	APct25   string `csv:"A_PCT25"`
	AMedian  string `csv:"A_MEDIAN"`
	APct75   string `csv:"A_PCT75"`
	APct90   string `csv:"A_PCT90"`

	// Annual and Hourly flag occupations published only as annual or only
	// as hourly wages.
	Annual string `csv:"ANNUAL"`
	Hourly string `csv:"HOURLY"`
}
