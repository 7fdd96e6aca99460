package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/free-radicals/parameter"
)

// Profile holds the per-species constants applied when an actor is constructed
type Profile struct {
	Name     string
	Symbol   rune
	Category Category

	// Radius is the base radius before resolution scaling
	Radius              float64
	ScaleWithResolution bool

	// CollisionRadiusMult sets the field-of-influence radius as a multiple of Radius
	CollisionRadiusMult float64

	// MassRadiusRatio yields mass = radius * ratio, zero means immovable
	MassRadiusRatio float64

	DragPerSecond float64

	// SpinScalar converts |v|^2/m into rotation per second, cosmetic only
	SpinScalar float64

	Collidable bool

	Color   colorful.Color
	Palette Palette

	// TouchCue is played when this species accepts a touch, empty for silence
	TouchCue string
}

const (
	defaultDrag      = 0.2
	defaultSpin      = -0.005
	defaultMassRatio = 4
	defaultFieldMult = 10
)

func atom(name string, symbol rune, radius float64, color colorful.Color) Profile {
	return Profile{
		Name:                name,
		Symbol:              symbol,
		Category:            CatAtom,
		Radius:              radius,
		ScaleWithResolution: true,
		CollisionRadiusMult: defaultFieldMult,
		MassRadiusRatio:     defaultMassRatio,
		DragPerSecond:       defaultDrag,
		SpinScalar:          defaultSpin,
		Collidable:          true,
		Color:               color,
		Palette:             paletteAtom,
	}
}

func molecule(name string, symbol rune, cat Category, radius float64, color colorful.Color, palette Palette) Profile {
	p := atom(name, symbol, radius, color)
	p.Category = cat
	p.Palette = palette
	return p
}

func emitter(name string, symbol rune, cat Category, radius float64, color colorful.Color) Profile {
	return Profile{
		Name:                name,
		Symbol:              symbol,
		Category:            cat,
		Radius:              radius,
		ScaleWithResolution: true,
		CollisionRadiusMult: defaultFieldMult,
		Collidable:          true,
		Color:               color,
		Palette:             paletteAtom,
	}
}

var profiles = func() [SpeciesCount]Profile {
	var p [SpeciesCount]Profile
	p[SpeciesNone] = Profile{Name: "None", Symbol: ' '}

	p[SpeciesHydrogen] = atom("Hydrogen", 'h', 4, ColorYellow)
	p[SpeciesHydrogen].ScaleWithResolution = false
	p[SpeciesHydrogen].CollisionRadiusMult = 40
	p[SpeciesHydrogen].TouchCue = parameter.CueTouch
	p[SpeciesCarbon] = atom("Carbon", 'c', 12, ColorGray)
	p[SpeciesNitrogen] = atom("Nitrogen", 'n', 14, ColorBlue)
	p[SpeciesOxygen] = atom("Oxygen", 'o', 16, ColorRed)
	p[SpeciesFluorine] = atom("Fluorine", 'f', 19, ColorCyan)
	p[SpeciesFluorine].Category |= CatHalogen
	p[SpeciesChlorine] = atom("Chlorine", 'l', 35.5, ColorGreen)
	p[SpeciesChlorine].Category |= CatHalogen
	p[SpeciesChlorine].SpinScalar = 0.005
	p[SpeciesBromine] = atom("Bromine", 'b', 40, ColorBrown)
	p[SpeciesBromine].Category |= CatHalogen
	p[SpeciesBromine].SpinScalar = 0.005

	p[SpeciesOxygenTwo] = molecule("OxygenTwo", 'O', CatJoint, 22, ColorRed, paletteO2)
	p[SpeciesNitrogenTwo] = molecule("NitrogenTwo", 'N', CatJoint, 20, ColorBlue, paletteN2)
	p[SpeciesDeuterium] = molecule("Deuterium", 'H', CatJoint, 6, ColorYellow, paletteHH)
	p[SpeciesMethylene] = molecule("Methylene", 'M', CatJoint, 16, ColorGray, paletteCH2)

	p[SpeciesOzone] = molecule("Ozone", '3', CatGreenhouse, 30, ColorRed, paletteO3)
	p[SpeciesWater] = molecule("Water", 'W', CatGreenhouse, 20, ColorCornflowerBlue, paletteH2O)
	p[SpeciesNitrousOxide] = molecule("NitrousOxide", '2', CatGreenhouse, 28, ColorPurple, paletteN2O)
	p[SpeciesCarbonDioxide] = molecule("CarbonDioxide", 'C', CatGreenhouse, 28, ColorGray, paletteCO2)
	p[SpeciesMethane] = molecule("Methane", '4', CatGreenhouse, 20, ColorYellow, paletteCH4)

	p[SpeciesNitricOxide] = molecule("NitricOxide", 'x', CatFreeRadical, 20, ColorOrange, paletteNO)
	p[SpeciesCFC1] = molecule("CFC1", '1', CatFreeRadical, 36, ColorPurple, paletteCFC1)
	p[SpeciesCFC2] = molecule("CFC2", '!', CatFreeRadical, 40, ColorGreen, paletteCFC2)
	p[SpeciesHydroxyl] = molecule("Hydroxyl", 'y', CatFreeRadical, 18, ColorDeepPink, paletteOH)

	p[SpeciesNorth] = emitter("North", '^', CatPole, 50, ColorWhite)
	p[SpeciesSouth] = emitter("South", 'v', CatPole, 50, ColorWhite)
	p[SpeciesWest] = emitter("West", '<', CatPole, 50, ColorWhite)
	p[SpeciesEast] = emitter("East", '>', CatPole, 50, ColorWhite)

	repel := []Species{SpeciesRepelOne, SpeciesRepelTwo, SpeciesRepelThree, SpeciesRepelFour, SpeciesRepelFive, SpeciesRepelSix, SpeciesRepelSeven}
	names := []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}
	for i, s := range repel {
		p[s] = emitter(names[i], rune('1'+i), CatRepel, 20, ColorSilver)
	}

	p[SpeciesNanoBot] = Profile{
		Name:                "NanoBot",
		Symbol:              '@',
		Category:            CatPlayer,
		Radius:              20,
		ScaleWithResolution: true,
		CollisionRadiusMult: 1,
		MassRadiusRatio:     defaultMassRatio,
		DragPerSecond:       defaultDrag,
		Collidable:          true,
		Color:               ColorCornflowerBlue,
		Palette:             paletteNanoBot,
	}
	return p
}()

// Lookup returns the profile for s, nil for out-of-range tags
func Lookup(s Species) *Profile {
	if s >= SpeciesCount {
		return nil
	}
	return &profiles[s]
}
