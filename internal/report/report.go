package report

import (
	"time"

	"gym-application/internal/member"
)

// MemberStat is one member's row in the monthly report.
type MemberStat struct {
	MemberID       int     `json:"member_id"`
	Name           string  `json:"name"`
	AttendanceDays int     `json:"attendance_days"`
	FeesPaid       float64 `json:"fees_paid"`
}

type Report struct {
	Period          string       `json:"period"`
	TotalMembers    int          `json:"total_members"`
	TotalAttendance int          `json:"total_attendance"`
	FeesCollected   float64      `json:"fees_collected"`
	FeesPending     float64      `json:"fees_pending"`
	PerMember       []MemberStat `json:"per_member"`
}

// Build rolls up attendance and fee state for one "YYYY-MM" period. Pure and
// deterministic: rows follow the order of the members slice.
//
// Fees count each member's own fee only. A member without an override fee
// contributes zero, paid or not, so the rollup never invents revenue from
// the gym-wide default.
func Build(period string, members []member.Member, attendance map[int][]time.Time) Report {
	rep := Report{Period: period, TotalMembers: len(members), PerMember: []MemberStat{}}

	for _, m := range members {
		days := countInPeriod(attendance[m.ID], period)
		fee := m.FeeOrZero()

		stat := MemberStat{MemberID: m.ID, Name: m.Name, AttendanceDays: days}
		if m.Payment == member.PaymentPaid {
			stat.FeesPaid = fee
			rep.FeesCollected += fee
		} else {
			rep.FeesPending += fee
		}

		rep.TotalAttendance += days
		rep.PerMember = append(rep.PerMember, stat)
	}

	return rep
}

func countInPeriod(dates []time.Time, period string) int {
	count := 0
	for _, d := range dates {
		if d.Format("2006-01") == period {
			count++
		}
	}
	return count
}
