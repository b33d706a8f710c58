package domain

import "time"

// DailyOccupancy is the occupied-room count for one calendar day, supplied
// by the occupancy collaborator as an input to derived metrics (ADR).
type DailyOccupancy struct {
	Date          time.Time
	OccupiedRooms int
}
