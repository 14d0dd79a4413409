package programs

import "github.com/fitforge/webfront/internal/fitapi"

// Actions lists what the viewer can do with a program right now.
// At most one of the four combinations is ever offered: start,
// pause+abandon, resume+abandon, or nothing at all.
type Actions struct {
	CanStart   bool `json:"canStart"`
	CanPause   bool `json:"canPause"`
	CanResume  bool `json:"canResume"`
	CanAbandon bool `json:"canAbandon"`
}

// AvailableActions derives the action set from the viewer's enrollment
// in this program and whether some other program currently holds their
// active slot. Completed and abandoned enrollments count as not
// enrolled, the program can be started again.
func AvailableActions(hasActiveElsewhere bool, enrollment *fitapi.Enrollment) Actions {
	if enrollment == nil ||
		enrollment.Status == fitapi.StatusCompleted ||
		enrollment.Status == fitapi.StatusAbandoned {
		return Actions{CanStart: !hasActiveElsewhere}
	}

	switch enrollment.Status {
	case fitapi.StatusActive:
		return Actions{CanPause: true, CanAbandon: true}
	case fitapi.StatusPaused:
		return Actions{CanResume: true, CanAbandon: true}
	}
	return Actions{}
}

// IsDayCompleted reports whether the enrollment has a completion record
// for the given program day. Day references come back from the core API
// as either raw ids or embedded objects, DayRef already folds both into
// the id.
func IsDayCompleted(enrollment *fitapi.EnrollmentDetail, dayID int64) bool {
	if enrollment == nil {
		return false
	}
	for i := range enrollment.CompletedDays {
		if enrollment.CompletedDays[i].ProgramDay.ID == dayID {
			return true
		}
	}
	return false
}

// IsNextDay reports whether the given day is the enrollment's next
// scheduled workout.
func IsNextDay(enrollment *fitapi.Enrollment, dayID int64) bool {
	return enrollment != nil &&
		enrollment.NextWorkoutDay != nil &&
		enrollment.NextWorkoutDay.ID == dayID
}
