package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/JackJiang1989/ht/entu"
)

// ExchangerCase is one heat exchanger problem read from a YAML input
// file. Temperatures and UA are pointers so an omitted key reads as
// unknown rather than as zero.
type ExchangerCase struct {
	Title         string   `yaml:"Title"`
	Mh            float64  `yaml:"Mh"`  // hot mass flow, kg/s
	Mc            float64  `yaml:"Mc"`  // cold mass flow, kg/s
	Cph           float64  `yaml:"Cph"` // hot specific heat, J/(kg K)
	Cpc           float64  `yaml:"Cpc"` // cold specific heat, J/(kg K)
	Configuration string   `yaml:"Configuration"`
	Thi           *float64 `yaml:"Thi"`
	Tho           *float64 `yaml:"Tho"`
	Tci           *float64 `yaml:"Tci"`
	Tco           *float64 `yaml:"Tco"`
	UA            *float64 `yaml:"UA"`
	QTolerance    float64  `yaml:"QTolerance"`
}

func (ec *ExchangerCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, ec)
}

// Case converts the file form into a solver case, resolving the
// configuration tag.
func (ec *ExchangerCase) Case() (entu.Case, error) {
	cfg, err := entu.ParseConfiguration(ec.Configuration)
	if err != nil {
		return entu.Case{}, err
	}
	return entu.Case{
		Mh: ec.Mh, Mc: ec.Mc,
		Cph: ec.Cph, Cpc: ec.Cpc,
		Config:     cfg,
		Thi:        ec.Thi,
		Tho:        ec.Tho,
		Tci:        ec.Tci,
		Tco:        ec.Tco,
		UA:         ec.UA,
		QTolerance: ec.QTolerance,
	}, nil
}

func (ec *ExchangerCase) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ec.Title)
	fmt.Printf("%8.5f\t\t= Mh [kg/s]\n", ec.Mh)
	fmt.Printf("%8.5f\t\t= Mc [kg/s]\n", ec.Mc)
	fmt.Printf("%8.3f\t\t= Cph [J/(kg K)]\n", ec.Cph)
	fmt.Printf("%8.3f\t\t= Cpc [J/(kg K)]\n", ec.Cpc)
	fmt.Printf("[%s]\t\t= Configuration\n", ec.Configuration)
	printOptional := func(name string, v *float64) {
		if v != nil {
			fmt.Printf("%8.3f\t\t= %s\n", *v, name)
		}
	}
	printOptional("Thi", ec.Thi)
	printOptional("Tho", ec.Tho)
	printOptional("Tci", ec.Tci)
	printOptional("Tco", ec.Tco)
	printOptional("UA [W/K]", ec.UA)
}
