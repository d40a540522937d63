package attendance

import "time"

// Day is a single attendance record. One row per member per calendar day.
type Day struct {
	ID       int       `db:"id" json:"id"`
	MemberID int       `db:"member_id" json:"member_id"`
	Date     time.Time `db:"date" json:"date"`
}

// DayStat is the daily visit total for the stats endpoint.
type DayStat struct {
	Bucket time.Time `db:"bucket" json:"bucket"`
	Visits int       `db:"visits" json:"visits"`
}

type MarkRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}
