package models

import "time"

// RoleType classifies roles by how the scheduler treats them
type RoleType string

const (
	RoleTypeSystem        RoleType = "SYSTEM"
	RoleTypeSupervisor    RoleType = "SUPERVISOR"
	RoleTypeTaskPerformer RoleType = "TASK_PERFORMER"
	RoleTypeOther         RoleType = "OTHER"
)

// IsValid checks if the RoleType is valid
func (t RoleType) IsValid() bool {
	switch t {
	case RoleTypeSystem, RoleTypeSupervisor, RoleTypeTaskPerformer, RoleTypeOther:
		return true
	}
	return false
}

// ObstacleStatus is the approval state of an obstacle
type ObstacleStatus string

const (
	ObstacleStatusAwaiting ObstacleStatus = "AWAITING"
	ObstacleStatusApproved ObstacleStatus = "APPROVED"
	ObstacleStatusRejected ObstacleStatus = "REJECTED"
)

// IsValid checks if the ObstacleStatus is valid
func (s ObstacleStatus) IsValid() bool {
	switch s {
	case ObstacleStatusAwaiting, ObstacleStatusApproved, ObstacleStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions
func (s ObstacleStatus) IsTerminal() bool {
	return s == ObstacleStatusApproved || s == ObstacleStatusRejected
}

// AuthProvider identifies how a user account authenticates
type AuthProvider string

const (
	AuthProviderGoogle AuthProvider = "GOOGLE"
	AuthProviderLocal  AuthProvider = "LOCAL"
)

// IsValid checks if the AuthProvider is valid
func (p AuthProvider) IsValid() bool {
	return p == AuthProviderGoogle || p == AuthProviderLocal
}

// DayOfWeek is the wire identifier for a calendar weekday
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// AllDaysOfWeek is the canonical MONDAY..SUNDAY ordering used for
// day-keyed wire maps.
var AllDaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid checks if the DayOfWeek is valid
func (d DayOfWeek) IsValid() bool {
	for _, v := range AllDaysOfWeek {
		if d == v {
			return true
		}
	}
	return false
}

// Order returns the position of the day in the MONDAY..SUNDAY ordering,
// or -1 for an unknown identifier.
func (d DayOfWeek) Order() int {
	for i, v := range AllDaysOfWeek {
		if d == v {
			return i
		}
	}
	return -1
}

// DayOfWeekFromTime converts a calendar date to its wire identifier
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// SpecialDateType classifies special calendar dates
type SpecialDateType string

const (
	// SpecialDateTypeFeast suppresses schedule generation for the date.
	SpecialDateTypeFeast SpecialDateType = "FEAST"
	// SpecialDateTypeStatsStart marks the statistics epoch; annotation only.
	SpecialDateTypeStatsStart SpecialDateType = "STATS_START"
)

// IsValid checks if the SpecialDateType is valid
func (t SpecialDateType) IsValid() bool {
	return t == SpecialDateTypeFeast || t == SpecialDateTypeStatsStart
}
