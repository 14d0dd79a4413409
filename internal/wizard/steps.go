package wizard

// StepValidity tells the browser which wizard steps can be advanced
// from. Duration always has a valid value, so its step is always
// passable; review requires everything before it.
type StepValidity struct {
	Muscles   bool `json:"muscles"`
	Intensity bool `json:"intensity"`
	Goal      bool `json:"goal"`
	Duration  bool `json:"duration"`
	Review    bool `json:"review"`
}

func Validity(selectedMuscles int, config Config) StepValidity {
	validity := StepValidity{
		Muscles:   selectedMuscles > 0,
		Intensity: config.Intensity != nil,
		Goal:      config.Goal != nil,
		Duration:  true,
	}
	validity.Review = validity.Muscles && validity.Intensity && validity.Goal
	return validity
}
