// Package sharedtypes defines the identifier and score types shared across
// engine modules.
package sharedtypes

import "time"

// UserID identifies a player.
type UserID string

func (u UserID) String() string { return string(u) }

// CourseID identifies a golf course.
type CourseID string

func (c CourseID) String() string { return string(c) }

// RegionKey is the geographic partition key scoping a leaderboard to a
// local area.
type RegionKey string

func (r RegionKey) String() string { return string(r) }

// EventID is the stable identifier of a round-completed event. Every
// derived write is keyed by it so redelivery cannot double count.
type EventID string

func (e EventID) String() string { return string(e) }

// Score is a stroke count. Integer on purpose: scores never carry
// fractional strokes and integer comparison avoids float tie-break bugs.
type Score int

// Timestamp wraps the event occurrence time.
type Timestamp = time.Time
