package member

import "time"

type PaymentStatus string
type MemberStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"

	StatusActive   MemberStatus = "Active"
	StatusInactive MemberStatus = "Inactive"
)

// Member is a gym member. Fee, when set, overrides the gym's base fee on
// invoices. Payment flips back to Unpaid at every month boundary.
type Member struct {
	ID        int           `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     string        `db:"phone" json:"phone"`
	Fee       *float64      `db:"fee" json:"fee,omitempty"`
	Payment   PaymentStatus `db:"payment" json:"payment"`
	Status    MemberStatus  `db:"status" json:"status"`
	JoinDate  time.Time     `db:"join_date" json:"join_date"`
	Profile   string        `db:"profile" json:"profile"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// FeeOrDefault returns the member's override fee, falling back to the gym's
// base fee.
func (m *Member) FeeOrDefault(baseFee float64) float64 {
	if m.Fee != nil {
		return *m.Fee
	}
	return baseFee
}

// FeeOrZero is used by reports, which bill against the member's own fee only.
func (m *Member) FeeOrZero() float64 {
	if m.Fee != nil {
		return *m.Fee
	}
	return 0
}

type CreateMemberRequest struct {
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Fee   *float64 `json:"fee" binding:"omitempty,gte=0"`
}

// UpdateMemberRequest carries partial updates; nil fields are left untouched.
type UpdateMemberRequest struct {
	Name    *string        `json:"name"`
	Email   *string        `json:"email"`
	Phone   *string        `json:"phone"`
	Fee     *float64       `json:"fee" binding:"omitempty,gte=0"`
	Payment *PaymentStatus `json:"payment" binding:"omitempty,oneof=Paid Unpaid"`
	Status  *MemberStatus  `json:"status" binding:"omitempty,oneof=Active Inactive"`
}
