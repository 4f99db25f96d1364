package entity

import (
	"sort"
	"time"

	"gorm.io/datatypes"
)

// DoctorAvailability is a recurring weekly window in which a doctor can operate.
// DayOfWeek counts from Monday = 0 to Sunday = 6.
type DoctorAvailability struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int            `gorm:"not null;index:idx_availability_doctor_day" json:"doctor_id"`
	DayOfWeek int            `gorm:"not null;index:idx_availability_doctor_day" json:"day_of_week"`
	StartTime datatypes.Time `gorm:"type:time;not null" json:"start_time"`
	EndTime   datatypes.Time `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availability"
}

// DayNames indexes weekday names by DayOfWeek.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayOfWeek maps t onto the Monday-first numbering used by availability rows.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// CoversInterval reports whether [from, to] lies inside the union of the windows.
// Overlapping or touching windows are merged before the check; windows whose end
// does not come after their start are ignored.
func CoversInterval(windows []DoctorAvailability, from, to time.Duration) bool {
	if to < from {
		return false
	}

	type span struct{ start, end time.Duration }
	spans := make([]span, 0, len(windows))
	for _, w := range windows {
		s, e := time.Duration(w.StartTime), time.Duration(w.EndTime)
		if e > s {
			spans = append(spans, span{s, e})
		}
	}
	if len(spans) == 0 {
		return false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	cur := spans[0]
	for _, sp := range spans[1:] {
		if sp.start <= cur.end {
			if sp.end > cur.end {
				cur.end = sp.end
			}
			continue
		}
		if cur.start <= from && to <= cur.end {
			return true
		}
		cur = sp
	}
	return cur.start <= from && to <= cur.end
}
