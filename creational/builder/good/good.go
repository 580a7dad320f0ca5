// Package good assembles cars and their manuals step by step.
//
// A Director knows the recipes (sports car, SUV) and drives any Builder
// through them. CarBuilder and ManualBuilder share the same steps but produce
// different products, so one recipe yields both a car and its matching manual.
package good

import (
	"context"
	"errors"
	"fmt"

	"github.com/sghaida/patterns/creational/builder/internal/car"
	"github.com/sghaida/patterns/internal/demo"
)

type (
	CarType          = car.Type
	Engine           = car.Engine
	Dashboard        = car.Dashboard
	Wheels           = car.Wheels
	GPSNavigator     = car.GPSNavigator
	Car              = car.Car
	Manual           = car.Manual
	MissingPartError = car.MissingPartError
)

const (
	Sports = car.Sports
	SUV    = car.SUV
)

var ErrUnknownCarType = errors.New("builder: unknown car type")

// Builder is the set of construction steps.
type Builder interface {
	Reset()
	SetCarType(t CarType) Builder
	SetSeats(n int) Builder
	SetEngine(e Engine) Builder
	SetWheels(w Wheels) Builder
	SetDashboard(d Dashboard) Builder
	SetGPSNavigator(g *GPSNavigator) Builder
	SetConvertible(v bool) Builder
}

// steps records parts. Both concrete builders embed it.
type steps struct {
	parts car.Parts
}

func (s *steps) Reset() { s.parts = car.Parts{} }

func (s *steps) SetCarType(t CarType) Builder {
	s.parts.Type = &t
	return s
}

func (s *steps) SetSeats(n int) Builder {
	s.parts.Seats = &n
	return s
}

func (s *steps) SetEngine(e Engine) Builder {
	s.parts.Engine = &e
	return s
}

func (s *steps) SetWheels(w Wheels) Builder {
	s.parts.Wheels = &w
	return s
}

func (s *steps) SetDashboard(d Dashboard) Builder {
	s.parts.Dashboard = &d
	return s
}

func (s *steps) SetGPSNavigator(g *GPSNavigator) Builder {
	s.parts.GPSNavigator = g
	return s
}

func (s *steps) SetConvertible(v bool) Builder {
	s.parts.IsConvertible = v
	return s
}

// CarBuilder produces cars.
type CarBuilder struct {
	steps
}

func NewCarBuilder() *CarBuilder { return &CarBuilder{} }

// Result returns the car, or a MissingPartError.
func (b *CarBuilder) Result() (Car, error) {
	if err := b.parts.Validate(); err != nil {
		return Car{}, err
	}
	return b.parts.Car(), nil
}

// ManualBuilder produces manuals.
type ManualBuilder struct {
	steps
}

func NewManualBuilder() *ManualBuilder { return &ManualBuilder{} }

// Result returns the manual, or a MissingPartError.
func (b *ManualBuilder) Result() (Manual, error) {
	if err := b.parts.Validate(); err != nil {
		return Manual{}, err
	}
	return b.parts.Manual(), nil
}

// Director runs the recipes against its current builder.
type Director struct {
	builder Builder
}

func NewDirector(b Builder) *Director { return &Director{builder: b} }

func (d *Director) ChangeBuilder(b Builder) { d.builder = b }

// Make resets the builder and runs the recipe for t.
func (d *Director) Make(t CarType) error {
	d.builder.Reset()
	switch t {
	case Sports:
		d.builder.SetCarType(Sports).
			SetSeats(2).
			SetEngine(Engine{}).
			SetWheels(Wheels{DiameterInInches: 20}).
			SetDashboard(Dashboard{HasRevCounter: true}).
			SetConvertible(true).
			SetGPSNavigator(&GPSNavigator{})
	case SUV:
		d.builder.SetCarType(SUV).
			SetSeats(5).
			SetEngine(Engine{}).
			SetWheels(Wheels{DiameterInInches: 18}).
			SetDashboard(Dashboard{HasRevCounter: false})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCarType, t)
	}
	return nil
}

// Run builds both cars, then both manuals, and prints the manuals.
func Run(_ context.Context, env demo.Env) error {
	carBuilder := NewCarBuilder()
	director := NewDirector(carBuilder)

	if err := director.Make(Sports); err != nil {
		return err
	}
	if _, err := carBuilder.Result(); err != nil {
		return err
	}
	if err := director.Make(SUV); err != nil {
		return err
	}
	if _, err := carBuilder.Result(); err != nil {
		return err
	}

	manualBuilder := NewManualBuilder()
	director.ChangeBuilder(manualBuilder)

	if err := director.Make(Sports); err != nil {
		return err
	}
	manualSportCar, err := manualBuilder.Result()
	if err != nil {
		return err
	}
	if err := director.Make(SUV); err != nil {
		return err
	}
	manualSuvCar, err := manualBuilder.Result()
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Manual for 'sportCar':\n%s\n", manualSportCar.Print())
	fmt.Fprintln(env.Out, "==========================================")
	fmt.Fprintf(env.Out, "Manual for 'suvCar':\n%s\n", manualSuvCar.Print())
	return nil
}
