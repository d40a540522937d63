package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAttendanceRepo struct{ mock.Mock }

func (m *MockAttendanceRepo) Mark(ctx context.Context, memberID int, date time.Time) (bool, error) {
	args := m.Called(ctx, memberID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepo) Unmark(ctx context.Context, memberID int, date time.Time) (bool, error) {
	args := m.Called(ctx, memberID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepo) DatesFor(ctx context.Context, memberID int) ([]time.Time, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockAttendanceRepo) CountInPeriod(ctx context.Context, memberID int, yearMonth string) (int, error) {
	args := m.Called(ctx, memberID, yearMonth)
	return args.Int(0), args.Error(1)
}

func (m *MockAttendanceRepo) AllByMember(ctx context.Context) (map[int][]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]time.Time), args.Error(1)
}

func (m *MockAttendanceRepo) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DayStat), args.Error(1)
}

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestMarkThenMarkAgain(t *testing.T) {
	repo := new(MockAttendanceRepo)
	svc := NewService(repo)

	repo.On("Mark", mock.Anything, 1, day).Return(true, nil).Once()
	repo.On("Mark", mock.Anything, 1, day).Return(false, nil).Once()

	first, err := svc.Mark(context.Background(), 1, day)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, "Attendance marked!", first.Message)

	second, err := svc.Mark(context.Background(), 1, day)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Already marked for today", second.Message)

	repo.AssertExpectations(t)
}

func TestUnmarkThenUnmarkAgain(t *testing.T) {
	repo := new(MockAttendanceRepo)
	svc := NewService(repo)

	repo.On("Unmark", mock.Anything, 1, day).Return(true, nil).Once()
	repo.On("Unmark", mock.Anything, 1, day).Return(false, nil).Once()

	first, err := svc.Unmark(context.Background(), 1, day)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, "Attendance unmarked!", first.Message)

	second, err := svc.Unmark(context.Background(), 1, day)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Not marked for today", second.Message)

	repo.AssertExpectations(t)
}

func TestMarkRepoError(t *testing.T) {
	repo := new(MockAttendanceRepo)
	svc := NewService(repo)

	repo.On("Mark", mock.Anything, 1, day).Return(false, assert.AnError)

	_, err := svc.Mark(context.Background(), 1, day)
	assert.Error(t, err)
}
