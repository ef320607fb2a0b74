package structs

// Base of the drink
type Base string

const (
	BaseWater     Base = "water"
	BaseSbrite    Base = "sbrite"
	BasePokeacola Base = "pokeacola"
	BaseMrSalt    Base = "Mr. Salt"
	BaseHillFog   Base = "hill fog"
	BaseLeafWine  Base = "leaf wine"
)

// Size of the drink
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeMega   Size = "mega"
)

// Flavor enum
type Flavor string

const (
	FlavorLemon      Flavor = "lemon"
	FlavorCherry     Flavor = "cherry"
	FlavorStrawberry Flavor = "strawberry"
	FlavorMint       Flavor = "mint"
	FlavorBlueberry  Flavor = "blueberry"
	FlavorLime       Flavor = "lime"
)

// Menu order of the enumerations. Validation does not read these.
var (
	Bases   = []Base{BaseWater, BaseSbrite, BasePokeacola, BaseMrSalt, BaseHillFog, BaseLeafWine}
	Sizes   = []Size{SizeSmall, SizeMedium, SizeLarge, SizeMega}
	Flavors = []Flavor{FlavorLemon, FlavorCherry, FlavorStrawberry, FlavorMint, FlavorBlueberry, FlavorLime}
)

// IsValid reports whether b is on the menu. Bases are matched exactly.
func (b Base) IsValid() bool {
	switch b {
	case BaseWater, BaseSbrite, BasePokeacola, BaseMrSalt, BaseHillFog, BaseLeafWine:
		return true
	}
	return false
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeMega:
		return true
	}
	return false
}

func (f Flavor) IsValid() bool {
	switch f {
	case FlavorLemon, FlavorCherry, FlavorStrawberry, FlavorMint, FlavorBlueberry, FlavorLime:
		return true
	}
	return false
}
