package class

import "time"

// Class is one slot on the weekly schedule.
type Class struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Instructor string    `db:"instructor" json:"instructor"`
	Day        string    `db:"day" json:"day"`
	Time       string    `db:"time" json:"time"`
	Duration   string    `db:"duration" json:"duration"`
	Color      string    `db:"color" json:"color"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateClassRequest struct {
	Name       string `json:"name" binding:"required"`
	Instructor string `json:"instructor" binding:"required"`
	Day        string `json:"day" binding:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Time       string `json:"time" binding:"required,datetime=15:04"`
	Duration   string `json:"duration" binding:"required"`
	Color      string `json:"color" binding:"required"`
}
