/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JackJiang1989/ht/InputParameters"
	"github.com/JackJiang1989/ht/entu"
)

// rateCmd represents the rate command
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Solve a single heat exchanger case",
	Long: `
Solves one heat exchanger case, supplied either as a YAML file (-I) or
through flags. Whichever of the terminal temperatures and UA are given
determine the solving mode; the full thermal state is printed.

ht rate -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		c := processCase(cmd)
		res, err := entu.Solve(c)
		if err != nil {
			log.Fatal(err)
		}
		printResult(res)
	},
}

func processCase(cmd *cobra.Command) entu.Case {
	caseFile, _ := cmd.Flags().GetString("caseFile")
	if len(caseFile) != 0 {
		data, err := os.ReadFile(caseFile)
		if err != nil {
			log.Fatal(err)
		}
		ec := &InputParameters.ExchangerCase{}
		if err = ec.Parse(data); err != nil {
			log.Fatal(err)
		}
		ec.Print()
		c, err := ec.Case()
		if err != nil {
			log.Fatal(err)
		}
		return c
	}

	configTag, _ := cmd.Flags().GetString("configuration")
	if len(configTag) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) or a configuration tag (-c, --configuration)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Oil heater"
Mh: 5.2
Mc: 0.725
Cph: 1860
Cpc: 1900
Configuration: "crossflow, mixed Cmax"
Thi: 130
Tci: 15
UA: 2975.5
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	cfg, err := entu.ParseConfiguration(configTag)
	if err != nil {
		log.Fatal(err)
	}
	c := entu.Case{Config: cfg}
	c.Mh, _ = cmd.Flags().GetFloat64("mh")
	c.Mc, _ = cmd.Flags().GetFloat64("mc")
	c.Cph, _ = cmd.Flags().GetFloat64("cph")
	c.Cpc, _ = cmd.Flags().GetFloat64("cpc")
	c.Thi = optionalFlag(cmd, "thi")
	c.Tho = optionalFlag(cmd, "tho")
	c.Tci = optionalFlag(cmd, "tci")
	c.Tco = optionalFlag(cmd, "tco")
	c.UA = optionalFlag(cmd, "UA")
	c.QTolerance, _ = cmd.Flags().GetFloat64("qTolerance")
	log.Debugf("solving %s case from flags", cfg)
	return c
}

// optionalFlag distinguishes an unset flag from a legitimate zero.
func optionalFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func printResult(res entu.Result) {
	fmt.Printf("%14.4f\t= Q [W]\n", res.Q)
	fmt.Printf("%14.4f\t= UA [W/K]\n", res.UA)
	fmt.Printf("%14.6f\t= effectiveness\n", res.Effectiveness)
	fmt.Printf("%14.6f\t= NTU\n", res.NTU)
	fmt.Printf("%14.6f\t= Cr\n", res.Cr)
	fmt.Printf("%14.4f\t= Cmin [W/K]\n", res.Cmin)
	fmt.Printf("%14.4f\t= Cmax [W/K]\n", res.Cmax)
	fmt.Printf("%14.4f\t= Thi\n", res.Thi)
	fmt.Printf("%14.4f\t= Tho\n", res.Tho)
	fmt.Printf("%14.4f\t= Tci\n", res.Tci)
	fmt.Printf("%14.4f\t= Tco\n", res.Tco)
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rateCmd.Flags().StringP("caseFile", "I", "", "YAML file describing the exchanger case")
	rateCmd.Flags().StringP("configuration", "c", "", `flow configuration tag, e.g. "counterflow", "crossflow, mixed Cmax", "3S&T"`)
	rateCmd.Flags().Float64("mh", 0, "hot stream mass flow [kg/s]")
	rateCmd.Flags().Float64("mc", 0, "cold stream mass flow [kg/s]")
	rateCmd.Flags().Float64("cph", 0, "hot stream specific heat [J/(kg K)]")
	rateCmd.Flags().Float64("cpc", 0, "cold stream specific heat [J/(kg K)]")
	rateCmd.Flags().Float64("thi", 0, "hot inlet temperature")
	rateCmd.Flags().Float64("tho", 0, "hot outlet temperature")
	rateCmd.Flags().Float64("tci", 0, "cold inlet temperature")
	rateCmd.Flags().Float64("tco", 0, "cold outlet temperature")
	rateCmd.Flags().Float64("UA", 0, "overall heat transfer area term [W/K]")
	rateCmd.Flags().Float64("qTolerance", 0, "relative duty consistency tolerance (default 0.01)")
}
