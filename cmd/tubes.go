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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JackJiang1989/ht/geometry"
)

// tubesCmd represents the tubes command
var tubesCmd = &cobra.Command{
	Use:   "tubes",
	Short: "Estimate the tube count of a shell-and-tube bundle",
	Long: `
Estimates how many tubes fit in a tube bundle of a given outer
diameter, tube size, pitch, layout angle and pass count, using the
HEDH, VDI or Perry's correlations.

ht tubes --dbundle 1.184 --do 0.028 --pitch 0.036 --angle 30`,
	Run: func(cmd *cobra.Command, args []string) {
		dbundle, _ := cmd.Flags().GetFloat64("dbundle")
		do, _ := cmd.Flags().GetFloat64("do")
		pitch, _ := cmd.Flags().GetFloat64("pitch")
		pitchRatio, _ := cmd.Flags().GetFloat64("pitchRatio")
		ntp, _ := cmd.Flags().GetInt("ntp")
		angle, _ := cmd.Flags().GetInt("angle")
		method, _ := cmd.Flags().GetString("method")

		n, err := geometry.Ntubes(dbundle, ntp, do, pitch, angle, pitchRatio, method)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d\t= tube count\n", n)
	},
}

func init() {
	rootCmd.AddCommand(tubesCmd)
	tubesCmd.Flags().Float64("dbundle", 0, "bundle outer diameter [m]")
	tubesCmd.Flags().Float64("do", 0, "tube outer diameter [m]")
	tubesCmd.Flags().Float64("pitch", 0, "tube pitch [m] (0 = pitchRatio*do)")
	tubesCmd.Flags().Float64("pitchRatio", 1.25, "pitch to tube diameter ratio used when pitch is 0")
	tubesCmd.Flags().Int("ntp", 1, "number of tube passes")
	tubesCmd.Flags().Int("angle", 30, "layout angle: 30, 45, 60 or 90 degrees")
	tubesCmd.Flags().String("method", "", `correlation: "HEDH", "VDI" or "Perry's" (default by pass count)`)
}
