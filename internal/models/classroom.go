package models

import "time"

// Classroom is a snapshot of one classroom as handed out by the store.
// Mutation happens only inside the store; everything here is safe to serialize.
type Classroom struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Words     []string   `json:"words"`
	WordCount int        `json:"wordCount"`
	CreatedAt time.Time  `json:"createdAt"`
	Students  []*Student `json:"students"`
}

type Student struct {
	Name string `json:"name"`
	// TotalTime is accumulated learning time in seconds. Only completed
	// sessions count; an in-progress session lives in SessionStart.
	TotalTime    int                  `json:"totalTime"`
	SessionStart *time.Time           `json:"-"`
	LastActive   time.Time            `json:"lastActive"`
	Words        []string             `json:"words"`
	WordStats    map[string]*WordStat `json:"wordStats"`
}

type WordStat struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	Name         string    `json:"name"`
	TotalTime    int       `json:"totalTime"`
	TotalMinutes int       `json:"totalMinutes"`
	TotalSeconds int       `json:"totalSeconds"`
	IsActive     bool      `json:"isActive"`
	LastActive   time.Time `json:"lastActive"`
}

type StudentStatus struct {
	Name          string `json:"name"`
	TotalTime     int    `json:"totalTime"`
	IsActive      bool   `json:"isActive"`
	Rank          int    `json:"rank"`
	TotalStudents int    `json:"totalStudents"`
}
