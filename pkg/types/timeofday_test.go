package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	assert.Equal(t, TimeOfDay(0), NewTimeOfDay(0, 0, 0))
	assert.Equal(t, TimeOfDay(8*3600), NewTimeOfDay(8, 0, 0))
	assert.Equal(t, TimeOfDay(12*3600+30*60+15), NewTimeOfDay(12, 30, 15))
}

func TestTimeOfDay_Validate(t *testing.T) {
	assert.NoError(t, TimeOfDay(0).Validate())
	assert.NoError(t, TimeOfDay(SecondsPerDay).Validate())
	assert.Error(t, TimeOfDay(-1).Validate())
	assert.Error(t, TimeOfDay(SecondsPerDay+1).Validate())
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	am8 := NewTimeOfDay(8, 0, 0)
	am10 := NewTimeOfDay(10, 0, 0)

	assert.True(t, am8.IsBefore(am10))
	assert.False(t, am10.IsBefore(am8))
	assert.True(t, am10.IsAfter(am8))
	assert.Equal(t, 7200, am10.Sub(am8))
}

func TestTimeOfDay_AddSeconds(t *testing.T) {
	am8 := NewTimeOfDay(8, 0, 0)

	shifted, err := am8.AddSeconds(3600)
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 0, 0), shifted)

	_, err = am8.AddSeconds(SecondsPerDay)
	assert.Error(t, err)
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:00", NewTimeOfDay(8, 0, 0).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59, 59).String())
}

func TestTimeOfDay_JSON(t *testing.T) {
	raw, err := json.Marshal(NewTimeOfDay(8, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, "30600", string(raw))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte("43200"), &decoded))
	assert.Equal(t, NewTimeOfDay(12, 0, 0), decoded)

	assert.Error(t, json.Unmarshal([]byte(`"12:00"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte("-5"), &decoded))
}
