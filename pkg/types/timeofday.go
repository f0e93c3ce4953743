package types

import (
	"encoding/json"
	"fmt"
)

// SecondsPerDay количество секунд в сутках
const SecondsPerDay = 24 * 60 * 60

// TimeOfDay время внутри суток в секундах от полуночи.
// Сериализуется в JSON как целое число секунд — в таком виде
// расписания приходят из BookingService.
type TimeOfDay int

// NewTimeOfDay создает TimeOfDay из часов, минут и секунд
func NewTimeOfDay(hours, minutes, seconds int) TimeOfDay {
	return TimeOfDay(hours*3600 + minutes*60 + seconds)
}

// Validate проверяет, что значение попадает в границы суток
func (t TimeOfDay) Validate() error {
	if t < 0 || t > SecondsPerDay {
		return fmt.Errorf("time of day out of range: %d seconds", int(t))
	}
	return nil
}

// Seconds возвращает значение в секундах от полуночи
func (t TimeOfDay) Seconds() int {
	return int(t)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// AddSeconds возвращает время, сдвинутое на seconds вперед
func (t TimeOfDay) AddSeconds(seconds int) (TimeOfDay, error) {
	result := TimeOfDay(int(t) + seconds)
	if err := result.Validate(); err != nil {
		return 0, err
	}
	return result, nil
}

// Sub возвращает разницу t - other в секундах
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return int(t) - int(other)
}

// String форматирует время как HH:MM (секунды отбрасываются)
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/3600, int(t)%3600/60)
}

// MarshalJSON сериализует время как число секунд от полуночи
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}

// UnmarshalJSON десериализует время из числа секунд от полуночи
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var seconds int
	if err := json.Unmarshal(data, &seconds); err != nil {
		return fmt.Errorf("invalid time of day: %w", err)
	}
	parsed := TimeOfDay(seconds)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}
