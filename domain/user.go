package domain

import "time"

// User is one record of the users collection. PoliticalPreference carries the
// five-way declared leaning; records exported before the preference survey
// leave it empty.
type User struct {
	ID                  string              `json:"id"`
	Nickname            string              `json:"nickname"`
	PoliticalPreference DeclaredPerspective `json:"politicalPreference"`
	CreatedAt           *time.Time          `json:"createdAt"`
	UpdatedAt           *time.Time          `json:"updatedAt"`
}

// PreferenceCount is one slice of the overall preference distribution.
type PreferenceCount struct {
	Preference string `json:"preference"`
	UserCount  int    `json:"userCount"`
}

// PreferenceDistribution is the all-users leaning breakdown. Counts include
// an "unknown" slice for users without a declared preference.
type PreferenceDistribution struct {
	TotalUsers int               `json:"totalUsers"`
	Counts     []PreferenceCount `json:"counts"`
}

// UserActivity summarizes one user's score-history footprint for the
// recent-active-users listing.
type UserActivity struct {
	UserID       string     `json:"userId"`
	LastActiveAt *time.Time `json:"lastActiveAt"`
	RecordCount  int        `json:"recordCount"`
}
