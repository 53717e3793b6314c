package models

// FlatRow is one Activity merged with its parent Submission's identity, the
// shape the grid, the detailed dashboard table, and the exporters consume.
// SubKey and ActivityIndex route edits and deletes back to the origin record.
type FlatRow struct {
	SubKey             string `json:"subKey"`
	ActivityIndex      int    `json:"activityIndex"`
	Directorate        string `json:"directorate"`
	VolunteerName      string `json:"volunteer_name"`
	ActivityDate       string `json:"activity_date"`
	ActivityType       string `json:"activity_type"`
	DistrictArea       string `json:"district_area"`
	Sessions           Count  `json:"sessions"`
	IECMaterials       Count  `json:"iec_materials"`
	GirlsResident      Count  `json:"girls_resident"`
	GirlsReturnee      Count  `json:"girls_returnee"`
	GirlsDisplaced     Count  `json:"girls_displaced"`
	BoysResident       Count  `json:"boys_resident"`
	BoysReturnee       Count  `json:"boys_returnee"`
	BoysDisplaced      Count  `json:"boys_displaced"`
	WomenResident      Count  `json:"women_resident"`
	WomenReturnee      Count  `json:"women_returnee"`
	WomenDisplaced     Count  `json:"women_displaced"`
	MenResident        Count  `json:"men_resident"`
	MenReturnee        Count  `json:"men_returnee"`
	MenDisplaced       Count  `json:"men_displaced"`
	TotalBeneficiaries Count  `json:"total_beneficiaries"`
}

// CountField names one numeric column and exposes it on both the nested
// Activity and the flattened row. Every component that used to repeat a block
// per counter (form read, flatten, inline edit, export, gender totals) walks
// this table instead.
type CountField struct {
	Name   string
	Gender string // girls/boys/women/men, empty for sessions and iec_materials
	Field  func(*Activity) *Count
	Row    func(*FlatRow) *Count
}

// BeneficiaryFields is the {girls,boys,women,men} × {resident,returnee,displaced}
// cross product, in form order.
var BeneficiaryFields = []CountField{
	{"girls_resident", "girls", func(a *Activity) *Count { return &a.GirlsResident }, func(r *FlatRow) *Count { return &r.GirlsResident }},
	{"girls_returnee", "girls", func(a *Activity) *Count { return &a.GirlsReturnee }, func(r *FlatRow) *Count { return &r.GirlsReturnee }},
	{"girls_displaced", "girls", func(a *Activity) *Count { return &a.GirlsDisplaced }, func(r *FlatRow) *Count { return &r.GirlsDisplaced }},
	{"boys_resident", "boys", func(a *Activity) *Count { return &a.BoysResident }, func(r *FlatRow) *Count { return &r.BoysResident }},
	{"boys_returnee", "boys", func(a *Activity) *Count { return &a.BoysReturnee }, func(r *FlatRow) *Count { return &r.BoysReturnee }},
	{"boys_displaced", "boys", func(a *Activity) *Count { return &a.BoysDisplaced }, func(r *FlatRow) *Count { return &r.BoysDisplaced }},
	{"women_resident", "women", func(a *Activity) *Count { return &a.WomenResident }, func(r *FlatRow) *Count { return &r.WomenResident }},
	{"women_returnee", "women", func(a *Activity) *Count { return &a.WomenReturnee }, func(r *FlatRow) *Count { return &r.WomenReturnee }},
	{"women_displaced", "women", func(a *Activity) *Count { return &a.WomenDisplaced }, func(r *FlatRow) *Count { return &r.WomenDisplaced }},
	{"men_resident", "men", func(a *Activity) *Count { return &a.MenResident }, func(r *FlatRow) *Count { return &r.MenResident }},
	{"men_returnee", "men", func(a *Activity) *Count { return &a.MenReturnee }, func(r *FlatRow) *Count { return &r.MenReturnee }},
	{"men_displaced", "men", func(a *Activity) *Count { return &a.MenDisplaced }, func(r *FlatRow) *Count { return &r.MenDisplaced }},
}

// CountFields is every numeric activity column: sessions, IEC materials, then
// the twelve beneficiary counters.
var CountFields = append([]CountField{
	{"sessions", "", func(a *Activity) *Count { return &a.Sessions }, func(r *FlatRow) *Count { return &r.Sessions }},
	{"iec_materials", "", func(a *Activity) *Count { return &a.IECMaterials }, func(r *FlatRow) *Count { return &r.IECMaterials }},
}, BeneficiaryFields...)
