// Package bad writes every car and every manual out as a struct literal.
//
// The sports car's configuration is spelled out twice (car and manual), as is
// the SUV's. Nothing keeps the pairs in sync and nothing checks required parts.
package bad

import (
	"context"
	"fmt"

	"github.com/sghaida/patterns/creational/builder/internal/car"
	"github.com/sghaida/patterns/internal/demo"
)

// Run prints the manuals of a sports car and an SUV.
func Run(_ context.Context, env demo.Env) error {
	sportCar := car.Car{
		Type:          car.Sports,
		Seats:         2,
		Engine:        &car.Engine{},
		Wheels:        &car.Wheels{DiameterInInches: 20},
		Dashboard:     &car.Dashboard{HasRevCounter: true},
		IsConvertible: true,
		GPSNavigator:  &car.GPSNavigator{},
	}

	suvCar := car.Car{
		Type:      car.SUV,
		Seats:     5,
		Engine:    &car.Engine{},
		Wheels:    &car.Wheels{DiameterInInches: 18},
		Dashboard: &car.Dashboard{HasRevCounter: false},
	}

	manualSportCar := car.Manual{
		Type:          car.Sports,
		Seats:         2,
		Engine:        &car.Engine{},
		Wheels:        &car.Wheels{DiameterInInches: 20},
		Dashboard:     &car.Dashboard{HasRevCounter: true},
		IsConvertible: true,
		GPSNavigator:  &car.GPSNavigator{},
	}

	manualSuvCar := car.Manual{
		Type:      car.SUV,
		Seats:     5,
		Engine:    &car.Engine{},
		Wheels:    &car.Wheels{DiameterInInches: 18},
		Dashboard: &car.Dashboard{HasRevCounter: false},
	}

	_, _ = sportCar, suvCar

	fmt.Fprintf(env.Out, "Manual for 'sportCar':\n%s\n", manualSportCar.Print())
	fmt.Fprintln(env.Out, "==========================================")
	fmt.Fprintf(env.Out, "Manual for 'suvCar':\n%s\n", manualSuvCar.Print())
	return nil
}
