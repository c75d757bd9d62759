package valueobjects

import "fmt"

// Trajectory is the narrative arc a genome is currently moving through.
type Trajectory string

const (
	TrajectoryEmergence     Trajectory = "emergence"
	TrajectoryIntegration   Trajectory = "integration"
	TrajectoryTranscendence Trajectory = "transcendence"
	TrajectoryAscent        Trajectory = "ascent"
	TrajectoryDescent       Trajectory = "descent"
	TrajectoryCrisis        Trajectory = "crisis"
)

// AllTrajectories lists the arcs in canonical draw order.
func AllTrajectories() []Trajectory {
	return []Trajectory{
		TrajectoryEmergence,
		TrajectoryIntegration,
		TrajectoryTranscendence,
		TrajectoryAscent,
		TrajectoryDescent,
		TrajectoryCrisis,
	}
}

// IsValid reports whether the value is a member of the closed enumeration.
func (t Trajectory) IsValid() bool {
	switch t {
	case TrajectoryEmergence, TrajectoryIntegration, TrajectoryTranscendence,
		TrajectoryAscent, TrajectoryDescent, TrajectoryCrisis:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (t Trajectory) String() string {
	return string(t)
}

// ParseTrajectory converts a string to a Trajectory, rejecting names outside
// the enumeration.
func ParseTrajectory(v string) (Trajectory, error) {
	t := Trajectory(v)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown trajectory %q", v)
	}
	return t, nil
}
