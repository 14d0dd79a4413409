package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/fitforge/webfront/internal/fitapi"
)

var (
	ErrUnknownIntensity = errors.New("unknown intensity")
	ErrUnknownGoal      = errors.New("unknown goal")
	ErrUnknownSetting   = errors.New("unknown workout setting")
)

const (
	DurationMin     = 15
	DurationMax     = 120
	DurationStep    = 5
	DurationDefault = 45
)

var validIntensities = map[string]bool{
	fitapi.IntensityLight:    true,
	fitapi.IntensityModerate: true,
	fitapi.IntensityIntense:  true,
}

var validGoals = map[string]bool{
	fitapi.GoalHypertrophy: true,
	fitapi.GoalStrength:    true,
	fitapi.GoalFatLoss:     true,
	fitapi.GoalEndurance:   true,
}

var validSettings = map[string]bool{
	fitapi.EquipmentGym:        true,
	fitapi.EquipmentHome:       true,
	fitapi.EquipmentBodyweight: true,
}

// Config is one session's wizard parameters. Intensity and Goal are nil
// until the user picks them; Duration and Setting always hold a value.
type Config struct {
	Intensity *string `json:"intensity"`
	Goal      *string `json:"goal"`
	Duration  int     `json:"duration"`
	Setting   string  `json:"setting"`
}

func defaultConfig() Config {
	return Config{
		Duration: DurationDefault,
		Setting:  fitapi.EquipmentGym,
	}
}

type sessionConfig struct {
	config     Config
	lastActive time.Time
}

// ConfigStore keeps per-session wizard configuration in memory, lost on
// restart just like the selection store.
type ConfigStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionConfig
	ttl      time.Duration
}

func NewConfigStore(ttl time.Duration) *ConfigStore {
	return &ConfigStore{
		sessions: make(map[string]*sessionConfig),
		ttl:      ttl,
	}
}

func (s *ConfigStore) session(token string) *sessionConfig {
	sc, ok := s.sessions[token]
	if !ok {
		sc = &sessionConfig{config: defaultConfig()}
		s.sessions[token] = sc
	}
	sc.lastActive = time.Now()
	return sc
}

func (s *ConfigStore) SetIntensity(token, intensity string) (Config, error) {
	if !validIntensities[intensity] {
		return Config{}, ErrUnknownIntensity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.session(token)
	sc.config.Intensity = &intensity
	return sc.config, nil
}

func (s *ConfigStore) SetGoal(token, goal string) (Config, error) {
	if !validGoals[goal] {
		return Config{}, ErrUnknownGoal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.session(token)
	sc.config.Goal = &goal
	return sc.config, nil
}

// SetDuration clamps to the allowed range and snaps to the 5 minute step.
func (s *ConfigStore) SetDuration(token string, minutes int) Config {
	minutes = clampDuration(minutes)

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.session(token)
	sc.config.Duration = minutes
	return sc.config
}

func (s *ConfigStore) SetSetting(token, setting string) (Config, error) {
	if !validSettings[setting] {
		return Config{}, ErrUnknownSetting
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.session(token)
	sc.config.Setting = setting
	return sc.config, nil
}

// Reset restores the defaults: no intensity, no goal, 45 minutes, gym.
func (s *ConfigStore) Reset(token string) Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.session(token)
	sc.config = defaultConfig()
	return sc.config
}

func (s *ConfigStore) Config(token string) Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(token).config
}

// ScanAndClean drops configs idle for longer than the store TTL.
func (s *ConfigStore) ScanAndClean() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sc := range s.sessions {
		if time.Since(sc.lastActive) > s.ttl {
			delete(s.sessions, token)
		}
	}
}

func clampDuration(minutes int) int {
	if minutes < DurationMin {
		return DurationMin
	}
	if minutes > DurationMax {
		return DurationMax
	}
	// snap to the nearest step
	remainder := minutes % DurationStep
	if remainder == 0 {
		return minutes
	}
	if remainder >= DurationStep/2+1 {
		return minutes + (DurationStep - remainder)
	}
	return minutes - remainder
}
