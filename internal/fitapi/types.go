package fitapi

import "time"

const (
	IntensityLight    = "light"
	IntensityModerate = "moderate"
	IntensityIntense  = "intense"

	GoalHypertrophy = "hypertrophy"
	GoalStrength    = "strength"
	GoalFatLoss     = "fat_loss"
	GoalEndurance   = "endurance"

	EquipmentGym        = "gym"
	EquipmentHome       = "home"
	EquipmentBodyweight = "bodyweight"

	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"

	HistoryStatusPlanned    = "planned"
	HistoryStatusInProgress = "in_progress"
	HistoryStatusCompleted  = "completed"
)

type Profile struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Bio           string `json:"bio"`
	AvatarURL     string `json:"avatar_url"`
	TotalWorkouts int    `json:"total_workouts"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	TotalPoints   int    `json:"total_points"`
	Level         int    `json:"level"`
}

type Exercise struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	Equipment        string   `json:"equipment"`
	Difficulty       string   `json:"difficulty"`
	Sets             int      `json:"sets"`
	Reps             string   `json:"reps"`
	RestSeconds      int      `json:"rest_seconds"`
	Description      string   `json:"description"`
	Instructions     string   `json:"instructions"`
	Tips             string   `json:"tips"`
	ImageURL         string   `json:"image_url"`
	GifURL           string   `json:"gif_url"`
	VideoURL         string   `json:"video_url"`
}

type Recommendation struct {
	Duration   int      `json:"duration"`
	Activities []string `json:"activities"`
}

// WorkoutPlan is the ordered exercise list produced by the core
// generation endpoint, with an echo of the input parameters.
type WorkoutPlan struct {
	Exercises         []Exercise     `json:"exercises"`
	TotalExercises    int            `json:"total_exercises"`
	EstimatedDuration int            `json:"estimated_duration"`
	MusclesTargeted   []string       `json:"muscles_targeted"`
	Intensity         string         `json:"intensity"`
	Goal              string         `json:"goal"`
	Equipment         string         `json:"equipment"`
	Warmup            Recommendation `json:"warmup_recommendation"`
	Cooldown          Recommendation `json:"cooldown_recommendation"`
}

type GeneratedWorkout struct {
	ID              int64       `json:"id"`
	MusclesTargeted []string    `json:"muscles_targeted"`
	Duration        int         `json:"duration"`
	Intensity       string      `json:"intensity"`
	Goal            string      `json:"goal"`
	Equipment       string      `json:"equipment"`
	WorkoutPlan     WorkoutPlan `json:"workout_plan"`
	CreatedAt       time.Time   `json:"created_at"`
}

type GenerateWorkoutRequest struct {
	MusclesTargeted []string `json:"muscles_targeted"`
	Duration        int      `json:"duration"`
	Intensity       string   `json:"intensity"`
	Goal            string   `json:"goal"`
	Equipment       string   `json:"equipment"`
}

type Achievement struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

type HistoryEntry struct {
	ID              int64      `json:"id"`
	WorkoutDate     string     `json:"workout_date"`
	MusclesTargeted []string   `json:"muscles_targeted"`
	Duration        int        `json:"duration"`
	Intensity       string     `json:"intensity"`
	Goal            string     `json:"goal"`
	Equipment       string     `json:"equipment"`
	Exercises       []Exercise `json:"exercises_completed"`
	Status          string     `json:"status"`
	PointsEarned    int        `json:"points_earned"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HistoryMutation is a created or patched history record together with
// any achievements the mutation unlocked.
type HistoryMutation struct {
	HistoryEntry
	NewlyUnlockedAchievements []Achievement `json:"newly_unlocked_achievements"`
}

type Preset struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	MuscleGroups     []string `json:"muscle_groups"`
	RecommendedLevel string   `json:"recommended_level"`
}

type ProgramDay struct {
	ID              int64    `json:"id"`
	WeekNumber      int      `json:"week_number"`
	DayNumber       int      `json:"day_number"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	MusclesTargeted []string `json:"muscles_targeted"`
	Duration        int      `json:"duration"`
	Intensity       string   `json:"intensity"`
	IsRestDay       bool     `json:"is_rest_day"`
}

type Program struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Weeks             int    `json:"weeks"`
	DaysPerWeek       int    `json:"days_per_week"`
	Difficulty        string `json:"difficulty"`
	Goal              string `json:"goal"`
	Icon              string `json:"icon"`
	Color             string `json:"color"`
	ImageURL          string `json:"image_url"`
	EstimatedDuration int    `json:"estimated_duration_per_session"`
	EquipmentNeeded   string `json:"equipment_needed"`
	IsFeatured        bool   `json:"is_featured"`
	TotalWorkouts     int    `json:"total_workouts"`
	EnrollmentCount   int    `json:"enrollment_count"`
}

type ProgramDetail struct {
	Program
	ProgramDays    []ProgramDay `json:"program_days"`
	UserEnrollment *Enrollment  `json:"user_enrollment"`
}

type DayCompletion struct {
	ID             int64     `json:"id"`
	ProgramDay     DayRef    `json:"program_day"`
	ProgramDayName string    `json:"program_day_name"`
	WeekNumber     int       `json:"week_number"`
	DayNumber      int       `json:"day_number"`
	WorkoutHistory *int64    `json:"workout_history"`
	CompletedAt    time.Time `json:"completed_at"`
	Notes          string    `json:"notes"`
}

type Enrollment struct {
	ID                   int64       `json:"id"`
	Program              ProgramRef  `json:"program"`
	ProgramName          string      `json:"program_name"`
	ProgramIcon          string      `json:"program_icon"`
	ProgramWeeks         int         `json:"program_weeks"`
	ProgramDaysPerWeek   int         `json:"program_days_per_week"`
	Status               string      `json:"status"`
	CurrentWeek          int         `json:"current_week"`
	CurrentDay           int         `json:"current_day"`
	StartedAt            time.Time   `json:"started_at"`
	CompletedAt          *time.Time  `json:"completed_at"`
	LastWorkoutAt        *time.Time  `json:"last_workout_at"`
	CompletionPercentage float64     `json:"completion_percentage"`
	NextWorkoutDay       *ProgramDay `json:"next_workout_day"`
	CompletedDaysCount   int         `json:"completed_days_count"`
	TotalDays            int         `json:"total_days"`
}

type EnrollmentDetail struct {
	Enrollment
	CompletedDays []DayCompletion `json:"completed_days"`
}

type CompleteDayRequest struct {
	ProgramDayID     int64  `json:"program_day_id"`
	WorkoutHistoryID *int64 `json:"workout_history_id,omitempty"`
	Notes            string `json:"notes,omitempty"`
}
