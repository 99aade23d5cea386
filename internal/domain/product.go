package domain

type Category string

const (
	CategoryFlower       Category = "flower"
	CategoryEdibles      Category = "edibles"
	CategoryConcentrates Category = "concentrates"
	CategoryVapes        Category = "vapes"
	CategoryPreRolls     Category = "pre-rolls"
	CategoryTopicals     Category = "topicals"
	CategoryAccessories  Category = "accessories"
)

var Categories = []Category{
	CategoryFlower,
	CategoryEdibles,
	CategoryConcentrates,
	CategoryVapes,
	CategoryPreRolls,
	CategoryTopicals,
	CategoryAccessories,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Strain string

// StrainNone marks products that are not strain specific, e.g. accessories.
const StrainNone Strain = ""

const (
	StrainIndica Strain = "indica"
	StrainSativa Strain = "sativa"
	StrainHybrid Strain = "hybrid"
	StrainCBD    Strain = "cbd"
)

var Strains = []Strain{StrainIndica, StrainSativa, StrainHybrid, StrainCBD}

func (s Strain) Valid() bool {
	for _, known := range Strains {
		if s == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	Category    Category `yaml:"category"`
	Strain      Strain   `yaml:"strain"`
	WeightLabel string   `yaml:"weightLabel"`
	THCPercent  *float64 `yaml:"thcPercent"`
	CBDPercent  *float64 `yaml:"cbdPercent"`
	Featured    bool     `yaml:"featured"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
}

func (p Product) HasStrain() bool {
	return p.Strain != StrainNone
}
