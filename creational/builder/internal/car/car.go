// Package car defines the products the builder variants assemble: a Car and
// its Manual, plus the bag of parts both are made from.
package car

import (
	"fmt"
	"strconv"
	"strings"
)

type Type int

const (
	Sports Type = iota
	SUV
)

func (t Type) String() string {
	switch t {
	case Sports:
		return "Sports"
	case SUV:
		return "SUV"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

type Engine struct{}

type Dashboard struct {
	HasRevCounter bool
}

type Wheels struct {
	DiameterInInches int
}

type GPSNavigator struct{}

type Car struct {
	Type          Type
	Seats         int
	Engine        *Engine
	Wheels        *Wheels
	Dashboard     *Dashboard
	IsConvertible bool
	GPSNavigator  *GPSNavigator
}

type Manual struct {
	Type          Type
	Seats         int
	Engine        *Engine
	Wheels        *Wheels
	Dashboard     *Dashboard
	IsConvertible bool
	GPSNavigator  *GPSNavigator
}

// Print renders the seven-line manual.
func (m Manual) Print() string {
	dashboard := "No rev counter"
	if m.Dashboard != nil && m.Dashboard.HasRevCounter {
		dashboard = "Has rev counter"
	}
	convertible := "No"
	if m.IsConvertible {
		convertible = "Yes"
	}
	gps := "N/A"
	if m.GPSNavigator != nil {
		gps = "Info on gps..."
	}
	diameter := 0
	if m.Wheels != nil {
		diameter = m.Wheels.DiameterInInches
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Car type: %s\n", m.Type)
	fmt.Fprintf(&b, "Seats: %d\n", m.Seats)
	b.WriteString("Engine: info on engine...\n")
	fmt.Fprintf(&b, "Wheels: diameter in inches = %d\n", diameter)
	fmt.Fprintf(&b, "Dashboard: %s\n", dashboard)
	fmt.Fprintf(&b, "Is convertible: %s\n", convertible)
	fmt.Fprintf(&b, "GPS Navigator: %s", gps)
	return b.String()
}

// MissingPartError reports a required part that was never set.
type MissingPartError struct {
	Part string
}

func (e MissingPartError) Error() string {
	return "builder: missing required part " + strconv.Quote(e.Part)
}

// Parts collects what a builder has been told so far.
// Nil pointers are parts that have not been set.
type Parts struct {
	Type          *Type
	Seats         *int
	Engine        *Engine
	Wheels        *Wheels
	Dashboard     *Dashboard
	IsConvertible bool
	GPSNavigator  *GPSNavigator
}

// Validate returns a MissingPartError for the first unset required part.
func (p Parts) Validate() error {
	switch {
	case p.Type == nil:
		return MissingPartError{Part: "type"}
	case p.Seats == nil:
		return MissingPartError{Part: "seats"}
	case p.Engine == nil:
		return MissingPartError{Part: "engine"}
	case p.Wheels == nil:
		return MissingPartError{Part: "wheels"}
	case p.Dashboard == nil:
		return MissingPartError{Part: "dashboard"}
	}
	return nil
}

// Car assembles a car. Call Validate first.
func (p Parts) Car() Car {
	return Car{
		Type:          *p.Type,
		Seats:         *p.Seats,
		Engine:        p.Engine,
		Wheels:        p.Wheels,
		Dashboard:     p.Dashboard,
		IsConvertible: p.IsConvertible,
		GPSNavigator:  p.GPSNavigator,
	}
}

// Manual assembles a manual. Call Validate first.
func (p Parts) Manual() Manual {
	return Manual{
		Type:          *p.Type,
		Seats:         *p.Seats,
		Engine:        p.Engine,
		Wheels:        p.Wheels,
		Dashboard:     p.Dashboard,
		IsConvertible: p.IsConvertible,
		GPSNavigator:  p.GPSNavigator,
	}
}
