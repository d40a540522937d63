package report

import (
	"testing"
	"time"

	"gym-application/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fee(v float64) *float64 { return &v }

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildRollup(t *testing.T) {
	members := []member.Member{
		{ID: 1, Name: "Ali", Fee: fee(1000), Payment: member.PaymentPaid},
		{ID: 2, Name: "Sara", Fee: fee(2000), Payment: member.PaymentUnpaid},
		{ID: 3, Name: "Hamza", Fee: fee(3000), Payment: member.PaymentPaid},
	}

	attendance := map[int][]time.Time{
		1: {day(1), day(2), day(3)},
		2: {day(1)},
		3: {day(5), time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
	}

	rep := Build("2024-05", members, attendance)

	assert.Equal(t, 3, rep.TotalMembers)
	assert.Equal(t, 5, rep.TotalAttendance, "April visit excluded from the May period")
	assert.Equal(t, 4000.0, rep.FeesCollected)
	assert.Equal(t, 2000.0, rep.FeesPending)

	require.Len(t, rep.PerMember, 3)
	assert.Equal(t, 3, rep.PerMember[0].AttendanceDays)
	assert.Equal(t, 1000.0, rep.PerMember[0].FeesPaid)
	assert.Equal(t, 0.0, rep.PerMember[1].FeesPaid, "unpaid member contributes nothing collected")
}

func TestBuildNoOverrideFee(t *testing.T) {
	members := []member.Member{
		{ID: 1, Name: "Ali", Payment: member.PaymentPaid},
	}

	rep := Build("2024-05", members, nil)

	assert.Equal(t, 0.0, rep.FeesCollected)
	assert.Equal(t, 0.0, rep.FeesPending)
}

func TestBuildEmpty(t *testing.T) {
	rep := Build("2024-05", nil, nil)

	assert.Equal(t, 0, rep.TotalMembers)
	assert.Empty(t, rep.PerMember)
	assert.NotNil(t, rep.PerMember)
}

func TestBuildDeterministic(t *testing.T) {
	members := []member.Member{
		{ID: 2, Name: "Sara", Fee: fee(2000), Payment: member.PaymentUnpaid},
		{ID: 1, Name: "Ali", Fee: fee(1000), Payment: member.PaymentPaid},
	}
	attendance := map[int][]time.Time{1: {day(1)}, 2: {day(2)}}

	first := Build("2024-05", members, attendance)
	second := Build("2024-05", members, attendance)

	assert.Equal(t, first, second)
	assert.Equal(t, "Sara", first.PerMember[0].Name, "rows follow member order")
}
