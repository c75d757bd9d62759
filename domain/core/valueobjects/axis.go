package valueobjects

import "fmt"

// HotCoolAxis is a bounded float in [-1, 1]. Negative values read as cool,
// positive as hot, zero as the crossroads between.
type HotCoolAxis struct {
	value float64
}

// NewHotCoolAxis creates an axis value with bounds validation.
func NewHotCoolAxis(v float64) (HotCoolAxis, error) {
	if v < -1 || v > 1 {
		return HotCoolAxis{}, fmt.Errorf("hot/cool axis %v outside [-1,1]", v)
	}
	return HotCoolAxis{value: v}, nil
}

// ClampedHotCoolAxis creates an axis value, clamping into [-1, 1].
// Blending canonical energy with caller bias can drift past the bounds by a
// rounding hair; clamping there is policy, not validation.
func ClampedHotCoolAxis(v float64) HotCoolAxis {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return HotCoolAxis{value: v}
}

// Value returns the raw float.
func (a HotCoolAxis) Value() float64 {
	return a.value
}

// IsHot reports whether the axis reads hot.
func (a HotCoolAxis) IsHot() bool {
	return a.value > 0
}

// IsCool reports whether the axis reads cool.
func (a HotCoolAxis) IsCool() bool {
	return a.value < 0
}

// Equals checks if two axis values are equal.
func (a HotCoolAxis) Equals(other HotCoolAxis) bool {
	return a.value == other.value
}

// MarshalJSON implements json.Marshaler
func (a HotCoolAxis) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%g", a.value)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *HotCoolAxis) UnmarshalJSON(data []byte) error {
	var v float64
	if _, err := fmt.Sscanf(string(data), "%g", &v); err != nil {
		return fmt.Errorf("hot/cool axis must be a number: %w", err)
	}
	parsed, err := NewHotCoolAxis(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnitInterval is a bounded float in [0, 1], used for individuation level and
// shadow integration.
type UnitInterval struct {
	value float64
}

// NewUnitInterval creates a unit-interval value with bounds validation.
func NewUnitInterval(v float64) (UnitInterval, error) {
	if v < 0 || v > 1 {
		return UnitInterval{}, fmt.Errorf("value %v outside [0,1]", v)
	}
	return UnitInterval{value: v}, nil
}

// Value returns the raw float.
func (u UnitInterval) Value() float64 {
	return u.value
}

// Equals checks if two unit-interval values are equal.
func (u UnitInterval) Equals(other UnitInterval) bool {
	return u.value == other.value
}

// MarshalJSON implements json.Marshaler
func (u UnitInterval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%g", u.value)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (u *UnitInterval) UnmarshalJSON(data []byte) error {
	var v float64
	if _, err := fmt.Sscanf(string(data), "%g", &v); err != nil {
		return fmt.Errorf("unit interval must be a number: %w", err)
	}
	parsed, err := NewUnitInterval(v)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
