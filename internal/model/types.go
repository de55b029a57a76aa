// Package model defines shared data structures.
package model

import "strconv"

// Variant selects which slot of an equation is hidden.
type Variant int

const (
	// FindLeft hides the left summand: _ + b = c.
	FindLeft Variant = iota + 1
	// FindRight hides the right summand: a + _ = c.
	FindRight
	// FindSum hides the sum: a + b = _.
	FindSum
)

// String returns the CLI name of the variant.
func (v Variant) String() string {
	switch v {
	case FindLeft:
		return "addition-find-summand1"
	case FindRight:
		return "addition-find-summand2"
	case FindSum:
		return "addition-find-sum"
	default:
		return "unknown"
	}
}

// Variants lists the supported variants in CLI order.
func Variants() []Variant {
	return []Variant{FindLeft, FindRight, FindSum}
}

// ParseVariant maps a CLI name to a Variant.
func ParseVariant(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, true
		}
	}
	return 0, false
}

// Slot is an optional nonnegative integer. The zero value is absent.
type Slot struct {
	Value int
	Set   bool
}

// Present returns a slot holding v.
func Present(v int) Slot {
	return Slot{Value: v, Set: true}
}

// Absent returns an empty slot.
func Absent() Slot {
	return Slot{}
}

// Placeholder is rendered in place of the hidden slot.
const Placeholder = "_"

// String renders the slot value or the placeholder.
func (s Slot) String() string {
	if !s.Set {
		return Placeholder
	}
	return strconv.Itoa(s.Value)
}

// Equation is an addition left + right = sum with exactly one slot absent.
type Equation struct {
	Left  Slot
	Right Slot
	Sum   Slot
}

// String renders the equation as "L + R = S".
func (e Equation) String() string {
	return e.Left.String() + " + " + e.Right.String() + " = " + e.Sum.String()
}

// Hidden returns the number of absent slots.
func (e Equation) Hidden() int {
	n := 0
	for _, s := range []Slot{e.Left, e.Right, e.Sum} {
		if !s.Set {
			n++
		}
	}
	return n
}

// Fill returns the equation with every absent slot set to answer.
func (e Equation) Fill(answer int) Equation {
	if !e.Left.Set {
		e.Left = Present(answer)
	}
	if !e.Right.Set {
		e.Right = Present(answer)
	}
	if !e.Sum.Set {
		e.Sum = Present(answer)
	}
	return e
}

// Round is one generated exercise and its solution.
type Round struct {
	Equation Equation
	Answer   int
}

// Config defines drill settings.
type Config struct {
	Count     int
	Variant   Variant
	Language  string
	LocaleDir string
	Seed      int64
}
