// internal/models/settings.go
package models

// Settings are the host-controlled lobby options.
type Settings struct {
	// AllowNSFW includes flagged posts in round selection when true.
	AllowNSFW bool `json:"allowNSFW"`

	// MaxRounds is a soft cap the presenting client observes; the engine
	// itself never stops advancing rounds.
	MaxRounds int `json:"maxRounds"`
}
