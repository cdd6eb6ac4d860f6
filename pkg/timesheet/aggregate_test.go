package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromRows(t *testing.T) {
	rows := []Row{
		{Name: "katie", Cells: []string{"IN 9:00", "OUT 5:00"}},
		{Name: "SAM", Cells: []string{"10:00", "2:30"}},
		{Name: "stranger", Cells: []string{"9:00", "17:00"}},
	}
	sh := Build(rows, DefaultConfig())

	emps := sh.Employees()
	require.Len(t, emps, 2)
	assert.Equal(t, "Katie", emps[0].Name)
	assert.Equal(t, 8.0, emps[0].TotalHours)
	assert.Equal(t, "Sam", emps[1].Name)
	assert.Equal(t, 4.5, emps[1].TotalHours)

	diags := sh.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnknownName, diags[0].Kind)
}

func TestBuildReportsUnmatchedIn(t *testing.T) {
	rows := []Row{{Name: "katie", Cells: []string{"9:00"}}}
	sh := Build(rows, DefaultConfig())

	require.Len(t, sh.Employees(), 1)
	assert.Empty(t, sh.Employees()[0].Sessions)
	require.Len(t, sh.Diagnostics(), 1)
	assert.Equal(t, DiagUnmatchedIn, sh.Diagnostics()[0].Kind)
	assert.Equal(t, "09:00", sh.Diagnostics()[0].Detail)
}

func TestTotalInvariantUnderMutation(t *testing.T) {
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})
	sh.Add("katie", Session{In: "18:00", Out: "21:15", Hours: 3.25})

	emp := sh.Employees()[0]
	assert.Equal(t, 11.25, emp.TotalHours)

	require.NoError(t, sh.Replace("katie", 1, Session{In: "18:00", Out: "20:00", Hours: 2.0}))
	assert.Equal(t, 10.0, emp.TotalHours)

	sum := 0.0
	for _, s := range emp.Sessions {
		sum += s.Hours
	}
	assert.Equal(t, round2(sum), emp.TotalHours)
}

func TestReplaceRejectsBadIndex(t *testing.T) {
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})

	assert.Error(t, sh.Replace("katie", 1, Session{}))
	assert.Error(t, sh.Replace("katie", -1, Session{}))
	assert.Error(t, sh.Replace("nobody", 0, Session{}))
	assert.Equal(t, 8.0, sh.Employees()[0].TotalHours)
}

func TestEditRecomputes(t *testing.T) {
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})

	sess, total, err := sh.Edit("Katie", 0, "10:00 AM", "3:45 PM")
	require.NoError(t, err)
	assert.Equal(t, "10:00", sess.In)
	assert.Equal(t, "15:45", sess.Out)
	assert.Equal(t, 5.75, sess.Hours)
	assert.False(t, sess.Flagged)
	assert.Equal(t, 5.75, total)
}

func TestEditRollsOutToNextDay(t *testing.T) {
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})

	sess, _, err := sh.Edit("katie", 0, "10:00 PM", "6:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "22:00", sess.In)
	assert.Equal(t, "06:00", sess.Out)
	assert.Equal(t, 8.0, sess.Hours)
}

func TestEditOverrideKeepsComputedHours(t *testing.T) {
	// An edit landing on a forced-override pair takes the override's flag
	// but keeps the hours computed from the entered interval.
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})

	sess, total, err := sh.Edit("katie", 0, "11:00 AM", "12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sess.Hours)
	assert.True(t, sess.Flagged)
	assert.Equal(t, 1.0, total)
}

func TestEditRejectsBadInputWithoutMutating(t *testing.T) {
	sh := NewSheet(DefaultConfig())
	sh.Add("katie", Session{In: "09:00", Out: "17:00", Hours: 8.0})

	_, _, err := sh.Edit("katie", 0, "not a time", "5:00 PM")
	assert.ErrorIs(t, err, ErrInvalidEdit)

	_, _, err = sh.Edit("katie", 3, "9:00 AM", "5:00 PM")
	assert.ErrorIs(t, err, ErrInvalidEdit)

	emp := sh.Employees()[0]
	assert.Equal(t, "09:00", emp.Sessions[0].In)
	assert.Equal(t, 8.0, emp.TotalHours)
}

func TestParseMeridiemTime(t *testing.T) {
	got, err := ParseMeridiemTime("5:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 17, got.Hour())

	got, err = ParseMeridiemTime("12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	// 24-hour input passes through; the meridiem only adjusts boundaries.
	got, err = ParseMeridiemTime("13:30 AM")
	require.NoError(t, err)
	assert.Equal(t, 13, got.Hour())

	_, err = ParseMeridiemTime("17:00")
	assert.ErrorIs(t, err, ErrInvalidEdit)
}
