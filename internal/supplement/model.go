package supplement

// Type is the closed set of supplements the gym sells by the scoop.
type Type string

const (
	TypeCreatine   Type = "creatine"
	TypeWhey       Type = "whey"
	TypePreworkout Type = "preworkout"
)

// Types is in billing order; invoices list supplements in this sequence.
var Types = []Type{TypeCreatine, TypeWhey, TypePreworkout}

func (t Type) Valid() bool {
	switch t {
	case TypeCreatine, TypeWhey, TypePreworkout:
		return true
	}
	return false
}

func (t Type) DisplayName() string {
	switch t {
	case TypeWhey:
		return "Whey Protein"
	case TypePreworkout:
		return "Pre-Workout"
	default:
		return "Creatine"
	}
}

// Usage holds a member's consumption for one supplement type. Scoops drives
// auto-mode billing; ManualCost is only read when the type is in manual mode.
type Usage struct {
	MemberID   int     `db:"member_id" json:"member_id"`
	Type       Type    `db:"type" json:"type"`
	Scoops     int     `db:"scoops" json:"scoops"`
	ManualCost float64 `db:"manual_cost" json:"manual_cost"`
}
