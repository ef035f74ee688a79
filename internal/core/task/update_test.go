package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateUpdate_Apply(t *testing.T) {
	existing := date(2024, 1, 15)

	t.Run("keep preserves existing", func(t *testing.T) {
		got := KeepDate().Apply(&existing)
		require.NotNil(t, got)
		assert.Equal(t, existing, *got)
	})

	t.Run("keep preserves absence", func(t *testing.T) {
		assert.Nil(t, KeepDate().Apply(nil))
	})

	t.Run("zero value keeps", func(t *testing.T) {
		var u DateUpdate
		assert.True(t, u.IsKeep())
		got := u.Apply(&existing)
		require.NotNil(t, got)
		assert.Equal(t, existing, *got)
	})

	t.Run("set replaces", func(t *testing.T) {
		got := SetDate(date(2024, 3, 1)).Apply(&existing)
		require.NotNil(t, got)
		assert.Equal(t, date(2024, 3, 1), *got)
	})

	t.Run("set truncates to calendar day", func(t *testing.T) {
		got := SetDate(time.Date(2024, 3, 1, 17, 45, 3, 0, time.UTC)).Apply(nil)
		require.NotNil(t, got)
		assert.Equal(t, date(2024, 3, 1), *got)
	})

	t.Run("clear removes", func(t *testing.T) {
		assert.Nil(t, ClearDate().Apply(&existing))
	})

	t.Run("clear of absent stays absent", func(t *testing.T) {
		assert.Nil(t, ClearDate().Apply(nil))
	})
}

func TestUpdateSet_DateUpdateRoundTrip(t *testing.T) {
	var up UpdateSet
	for _, kind := range DateKinds {
		assert.True(t, up.DateUpdate(kind).IsKeep(), "zero update for %s should keep", kind)
	}

	up.SetDateUpdate(DateDue, ClearDate())
	assert.False(t, up.DateUpdate(DateDue).IsKeep())
	assert.True(t, up.DateUpdate(DateStart).IsKeep())
}

func TestRecord_Dates(t *testing.T) {
	var r Record
	assert.False(t, r.HasAnyDate())

	d := date(2024, 6, 1)
	r.SetDate(DateScheduled, &d)
	require.NotNil(t, r.ScheduledDate)
	assert.Equal(t, d, *r.Date(DateScheduled))
	assert.True(t, r.HasAnyDate())

	r.SetDate(DateScheduled, nil)
	assert.Nil(t, r.ScheduledDate)
	assert.False(t, r.HasAnyDate())
}

func TestRecord_Scheduled(t *testing.T) {
	t.Run("no annotation", func(t *testing.T) {
		r := Record{Priority: PriorityNormal}
		assert.False(t, r.Scheduled())
	})

	t.Run("non normal priority counts", func(t *testing.T) {
		r := Record{Priority: PriorityHigh}
		assert.True(t, r.Scheduled())
	})

	t.Run("any date counts", func(t *testing.T) {
		d := date(2024, 2, 2)
		r := Record{Priority: PriorityNormal, DueDate: &d}
		assert.True(t, r.Scheduled())
	})
}

func TestPriority(t *testing.T) {
	for _, p := range Priorities {
		assert.True(t, p.Valid(), "%s should be valid", p)
	}
	assert.False(t, Priority("urgent").Valid())

	assert.Less(t, PriorityHighest.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityNormal.Rank(), PriorityLowest.Rank())
}
