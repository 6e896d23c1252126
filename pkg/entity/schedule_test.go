package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/workout/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleStatus(t *testing.T) {
	testCases := []struct {
		Status      entity.ScheduleStatus
		Valid       bool
		ValidFilter bool
	}{
		{Status: entity.StatusPending, Valid: true, ValidFilter: true},
		{Status: entity.StatusCompleted, Valid: true, ValidFilter: true},
		{Status: entity.StatusMissed, Valid: true, ValidFilter: true},
		{Status: entity.StatusAll, Valid: false, ValidFilter: true},
		{Status: "skipped", Valid: false, ValidFilter: false},
		{Status: "", Valid: false, ValidFilter: false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.Status), func(t *testing.T) {
			assert.Equal(t, tc.Valid, tc.Status.Valid())
			assert.Equal(t, tc.ValidFilter, tc.Status.ValidFilter())
		})
	}
}

func TestDate(t *testing.T) {
	d, err := entity.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, entity.Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-03-01", d.AddDays(1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))

	_, err = entity.ParseDate("2024-02-30")
	assert.Error(t, err)

	body, err := sonic.ConfigDefault.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(body))

	var decoded entity.Date
	require.NoError(t, sonic.ConfigDefault.Unmarshal([]byte(`"2023-12-31"`), &decoded))
	assert.Equal(t, entity.Date{Year: 2023, Month: time.December, Day: 31}, decoded)
	assert.Error(t, sonic.ConfigDefault.Unmarshal([]byte(`20231231`), &decoded))

	var zero entity.Date
	assert.Equal(t, "", zero.String())
	body, err = sonic.ConfigDefault.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(body))
	require.NoError(t, sonic.ConfigDefault.Unmarshal([]byte(`null`), &zero))
	assert.True(t, zero.IsZero())
}

func TestTimeOfDay(t *testing.T) {
	full, err := entity.ParseTimeOfDay("18:30:15")
	require.NoError(t, err)
	assert.Equal(t, entity.TimeOfDay{Hour: 18, Minute: 30, Second: 15}, full)

	short, err := entity.ParseTimeOfDay("07:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", short.String())
	assert.True(t, short.Before(full))

	_, err = entity.ParseTimeOfDay("25:00")
	assert.Error(t, err)

	assert.Equal(t, full, entity.TimeOfDayFromMicros(full.Micros()))

	var decoded entity.TimeOfDay
	require.NoError(t, sonic.ConfigDefault.Unmarshal([]byte(`"06:00"`), &decoded))
	assert.Equal(t, entity.TimeOfDay{Hour: 6}, decoded)
}

func TestScheduleUpdateEmpty(t *testing.T) {
	assert.True(t, entity.ScheduleUpdate{}.Empty())
	status := entity.StatusCompleted
	assert.False(t, entity.ScheduleUpdate{Status: &status}.Empty())
}
