// Package generic types the builder by its product.
//
// Builder[T] ends in Build() (T, error), so one recipe function works for any
// product and returns it directly:
//
//	manual, err := ConstructSportsCar(NewManualBuilder())
package generic

import (
	"context"
	"fmt"

	"github.com/sghaida/patterns/creational/builder/internal/car"
	"github.com/sghaida/patterns/internal/demo"
)

type (
	Car    = car.Car
	Manual = car.Manual
)

// Builder assembles a T.
type Builder[T any] interface {
	Reset()
	SetCarType(t car.Type) Builder[T]
	SetSeats(n int) Builder[T]
	SetEngine(e car.Engine) Builder[T]
	SetWheels(w car.Wheels) Builder[T]
	SetDashboard(d car.Dashboard) Builder[T]
	SetGPSNavigator(g *car.GPSNavigator) Builder[T]
	SetConvertible(v bool) Builder[T]
	Build() (T, error)
}

type partsBuilder[T any] struct {
	parts  car.Parts
	finish func(car.Parts) T
}

func (b *partsBuilder[T]) Reset() { b.parts = car.Parts{} }

func (b *partsBuilder[T]) SetCarType(t car.Type) Builder[T] {
	b.parts.Type = &t
	return b
}

func (b *partsBuilder[T]) SetSeats(n int) Builder[T] {
	b.parts.Seats = &n
	return b
}

func (b *partsBuilder[T]) SetEngine(e car.Engine) Builder[T] {
	b.parts.Engine = &e
	return b
}

func (b *partsBuilder[T]) SetWheels(w car.Wheels) Builder[T] {
	b.parts.Wheels = &w
	return b
}

func (b *partsBuilder[T]) SetDashboard(d car.Dashboard) Builder[T] {
	b.parts.Dashboard = &d
	return b
}

func (b *partsBuilder[T]) SetGPSNavigator(g *car.GPSNavigator) Builder[T] {
	b.parts.GPSNavigator = g
	return b
}

func (b *partsBuilder[T]) SetConvertible(v bool) Builder[T] {
	b.parts.IsConvertible = v
	return b
}

func (b *partsBuilder[T]) Build() (T, error) {
	if err := b.parts.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return b.finish(b.parts), nil
}

func NewCarBuilder() Builder[Car] {
	return &partsBuilder[Car]{finish: car.Parts.Car}
}

func NewManualBuilder() Builder[Manual] {
	return &partsBuilder[Manual]{finish: car.Parts.Manual}
}

// ConstructSportsCar runs the sports car recipe on b.
func ConstructSportsCar[T any](b Builder[T]) (T, error) {
	b.Reset()
	b.SetCarType(car.Sports).
		SetSeats(2).
		SetEngine(car.Engine{}).
		SetWheels(car.Wheels{DiameterInInches: 20}).
		SetDashboard(car.Dashboard{HasRevCounter: true}).
		SetConvertible(true).
		SetGPSNavigator(&car.GPSNavigator{})
	return b.Build()
}

// ConstructSUV runs the SUV recipe on b.
func ConstructSUV[T any](b Builder[T]) (T, error) {
	b.Reset()
	b.SetCarType(car.SUV).
		SetSeats(5).
		SetEngine(car.Engine{}).
		SetWheels(car.Wheels{DiameterInInches: 18}).
		SetDashboard(car.Dashboard{HasRevCounter: false})
	return b.Build()
}

// Run builds both cars and both manuals and prints the manuals.
func Run(_ context.Context, env demo.Env) error {
	carBuilder := NewCarBuilder()
	if _, err := ConstructSportsCar(carBuilder); err != nil {
		return err
	}
	if _, err := ConstructSUV(carBuilder); err != nil {
		return err
	}

	manualBuilder := NewManualBuilder()
	manualSportCar, err := ConstructSportsCar(manualBuilder)
	if err != nil {
		return err
	}
	manualSuvCar, err := ConstructSUV(manualBuilder)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Manual for 'sportCar':\n%s\n", manualSportCar.Print())
	fmt.Fprintln(env.Out, "==========================================")
	fmt.Fprintf(env.Out, "Manual for 'suvCar':\n%s\n", manualSuvCar.Print())
	return nil
}
