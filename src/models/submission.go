package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Count is a numeric form field. The collection form submits counters as free
// text, so values arrive as numbers, numeric strings, blanks, or garbage;
// anything that fails to parse becomes 0. Only the parse is guarded — a value
// that parses stays as parsed.
type Count int

// CoerceCount parses raw as an integer, defaulting to 0 on any failure.
func CoerceCount(raw string) Count {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return Count(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Count(int(f))
	}
	return 0
}

func (c Count) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*c = 0
		return nil
	}
	*c = CoerceCount(s)
	return nil
}

func (c Count) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(c))
}

func (c *Count) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeInt32:
		*c = Count(rv.Int32())
	case bson.TypeInt64:
		*c = Count(rv.Int64())
	case bson.TypeDouble:
		*c = Count(int(rv.Double()))
	case bson.TypeString:
		*c = CoerceCount(rv.StringValue())
	default:
		// null, missing, or an unexpected type all collapse to zero
		*c = 0
	}
	return nil
}

// Activity is one reported unit of volunteer work on one date in one area.
type Activity struct {
	ActivityType   string `json:"activity_type" bson:"activity_type" example:"Back to School session"`
	DistrictArea   string `json:"district_area" bson:"district_area" example:"Al-Mansura"`
	ActivityDate   string `json:"activity_date" bson:"activity_date" example:"2025-08-20"`
	Sessions       Count  `json:"sessions" bson:"sessions" example:"2"`
	IECMaterials   Count  `json:"iec_materials" bson:"iec_materials" example:"30"`
	GirlsResident  Count  `json:"girls_resident" bson:"girls_resident"`
	GirlsReturnee  Count  `json:"girls_returnee" bson:"girls_returnee"`
	GirlsDisplaced Count  `json:"girls_displaced" bson:"girls_displaced"`
	BoysResident   Count  `json:"boys_resident" bson:"boys_resident"`
	BoysReturnee   Count  `json:"boys_returnee" bson:"boys_returnee"`
	BoysDisplaced  Count  `json:"boys_displaced" bson:"boys_displaced"`
	WomenResident  Count  `json:"women_resident" bson:"women_resident"`
	WomenReturnee  Count  `json:"women_returnee" bson:"women_returnee"`
	WomenDisplaced Count  `json:"women_displaced" bson:"women_displaced"`
	MenResident    Count  `json:"men_resident" bson:"men_resident"`
	MenReturnee    Count  `json:"men_returnee" bson:"men_returnee"`
	MenDisplaced   Count  `json:"men_displaced" bson:"men_displaced"`
}

// TotalBeneficiaries is the sum of the twelve beneficiary counters. It is
// derived on every call, never stored.
func (a *Activity) TotalBeneficiaries() Count {
	var total Count
	for _, f := range BeneficiaryFields {
		total += *f.Field(a)
	}
	return total
}

// Submission is one form batch from one volunteer in one directorate.
type Submission struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Directorate   string             `json:"directorate" bson:"directorate" example:"Aden"`
	VolunteerName string             `json:"volunteer_name" bson:"volunteer_name" example:"V. Saleh"`
	Messages      string             `json:"messages,omitempty" bson:"messages,omitempty"`
	Activities    []Activity         `json:"activities" bson:"activities" validate:"min=1"`
	SavedAt       string             `json:"savedAt" bson:"savedAt" example:"2025-08-20T09:30:00Z"`
	DraftID       string             `json:"draftId,omitempty" bson:"draftId,omitempty" example:"draft_1755682200000"`
}
