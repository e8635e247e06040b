package models

import "slices"

// Flags are the three one-way onboarding and purchase markers.
type Flags struct {
	IsFirstAccess    bool `json:"isFirstAccess"`
	HasCompletedQuiz bool `json:"hasCompletedQuiz"`
	HasSubscription  bool `json:"hasSubscription"`
}

// DefaultFlags is the flag set of a fresh install.
func DefaultFlags() Flags {
	return Flags{IsFirstAccess: true}
}

// State is a point-in-time copy of everything the profile store holds.
// Mutating a State never affects the store.
type State struct {
	Profile   UserProfile  `json:"profile"`
	Favorites []string     `json:"favorites"`
	History   []ScanRecord `json:"history"`
	Stats     StatsData    `json:"stats"`
	IsLoading bool         `json:"isLoading"`
	Flags
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Profile = s.Profile.Clone()
	s.Favorites = cloneStrings(s.Favorites)
	if s.History == nil {
		s.History = []ScanRecord{}
	} else {
		s.History = slices.Clone(s.History)
	}
	return s
}
