package player

import (
	"fmt"
	"time"
)

// Position represents football position categories.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Performance is the ordinal player rating. Adjustments move it one
// step at a time and it never leaves [Critical, High].
type Performance int

const (
	PerformanceCritical Performance = iota
	PerformanceLow
	PerformanceMedium
	PerformanceHigh
)

func (p Performance) String() string {
	switch p {
	case PerformanceCritical:
		return "critical"
	case PerformanceLow:
		return "low"
	case PerformanceMedium:
		return "medium"
	case PerformanceHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Raised returns the next tier up, capped at High.
func (p Performance) Raised() Performance {
	if p < PerformanceHigh {
		return p + 1
	}
	return p
}

// Lowered returns the next tier down, floored at Critical.
func (p Performance) Lowered() Performance {
	if p > PerformanceCritical {
		return p - 1
	}
	return p
}

// Condition is the player's physical state.
type Condition string

const (
	ConditionHealthy Condition = "healthy"
	ConditionInjured Condition = "injured"
)

// Status is the player's roster/market state.
type Status string

const (
	StatusAvailable      Status = "available"
	StatusActive         Status = "active"
	StatusTransferListed Status = "transfer_listed"
	StatusRetired        Status = "retired"
	StatusNegotiating    Status = "negotiating"
)

const (
	SkillValueMin = 0
	SkillValueMax = 100
)

// Skill is a named integer rating held in [0,100].
type Skill struct {
	Name  string
	Value int
}

// ClampSkillValue forces v into the valid skill range.
func ClampSkillValue(v int) int {
	if v < SkillValueMin {
		return SkillValueMin
	}
	if v > SkillValueMax {
		return SkillValueMax
	}
	return v
}

// Player is a contracted athlete owned by exactly one team.
type Player struct {
	ID            string
	TeamID        string
	Name          string
	Position      Position
	Performance   Performance
	Condition     Condition
	ContractStart time.Time
	ContractEnd   time.Time
	WeeklySalary  int64
	TransferValue int64
	Status        Status
	Skills        []Skill
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Performance < PerformanceCritical || p.Performance > PerformanceHigh {
		return fmt.Errorf("invalid player performance tier: %d", p.Performance)
	}
	if p.WeeklySalary < 0 {
		return fmt.Errorf("player weekly salary cannot be negative")
	}
	for _, skill := range p.Skills {
		if skill.Name == "" {
			return fmt.Errorf("player skill name is required")
		}
		if skill.Value < SkillValueMin || skill.Value > SkillValueMax {
			return fmt.Errorf("player skill %s out of range: %d", skill.Name, skill.Value)
		}
	}

	return nil
}

// MeanSkill is the average skill value, zero for an empty skill set.
func (p Player) MeanSkill() float64 {
	if len(p.Skills) == 0 {
		return 0
	}
	total := 0
	for _, skill := range p.Skills {
		total += skill.Value
	}
	return float64(total) / float64(len(p.Skills))
}
