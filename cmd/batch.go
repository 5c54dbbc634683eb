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
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JackJiang1989/ht/entu"
)

// CaseRecord is one row of a batch CSV input file. Empty temperature
// and UA cells read as unknown.
type CaseRecord struct {
	Title  string   `csv:"title"`
	Mh     float64  `csv:"mh"`
	Mc     float64  `csv:"mc"`
	Cph    float64  `csv:"cph"`
	Cpc    float64  `csv:"cpc"`
	Config string   `csv:"config"`
	Thi    *float64 `csv:"thi,omitempty"`
	Tho    *float64 `csv:"tho,omitempty"`
	Tci    *float64 `csv:"tci,omitempty"`
	Tco    *float64 `csv:"tco,omitempty"`
	UA     *float64 `csv:"ua,omitempty"`
}

// ResultRecord is one row of the batch output file. Rows that failed
// carry the error text and zero values.
type ResultRecord struct {
	Title         string  `csv:"title"`
	Q             float64 `csv:"q"`
	UA            float64 `csv:"ua"`
	Effectiveness float64 `csv:"effectiveness"`
	NTU           float64 `csv:"ntu"`
	Cr            float64 `csv:"cr"`
	Cmin          float64 `csv:"cmin"`
	Cmax          float64 `csv:"cmax"`
	Thi           float64 `csv:"thi"`
	Tho           float64 `csv:"tho"`
	Tci           float64 `csv:"tci"`
	Tco           float64 `csv:"tco"`
	Error         string  `csv:"error"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve a CSV file of heat exchanger cases",
	Long: `
Reads exchanger cases from a CSV file, solves each row independently,
and writes a results CSV. A row that fails keeps its error message in
the output instead of aborting the run.

ht batch -I cases.csv -O results.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		inFile, _ := cmd.Flags().GetString("inFile")
		outFile, _ := cmd.Flags().GetString("outFile")
		if len(inFile) == 0 || len(outFile) == 0 {
			log.Fatal("must supply both an input (-I) and an output (-O) CSV file")
		}
		runBatch(inFile, outFile)
	},
}

func runBatch(inFile, outFile string) {
	in, err := os.Open(inFile)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	var records []*CaseRecord
	if err := gocsv.UnmarshalFile(in, &records); err != nil {
		log.Fatal(err)
	}
	log.Infof("read %d cases from %s", len(records), inFile)

	results := make([]*ResultRecord, 0, len(records))
	for _, rec := range records {
		results = append(results, solveRecord(rec))
	}

	out, err := os.Create(outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&results, out); err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %d results to %s", len(results), outFile)
}

func solveRecord(rec *CaseRecord) *ResultRecord {
	out := &ResultRecord{Title: rec.Title}
	cfg, err := entu.ParseConfiguration(rec.Config)
	if err != nil {
		log.Warnf("case %q: %v", rec.Title, err)
		out.Error = err.Error()
		return out
	}
	res, err := entu.Solve(entu.Case{
		Mh: rec.Mh, Mc: rec.Mc,
		Cph: rec.Cph, Cpc: rec.Cpc,
		Config: cfg,
		Thi:    rec.Thi, Tho: rec.Tho,
		Tci: rec.Tci, Tco: rec.Tco,
		UA: rec.UA,
	})
	if err != nil {
		log.Warnf("case %q: %v", rec.Title, err)
		out.Error = err.Error()
		return out
	}
	out.Q = res.Q
	out.UA = res.UA
	out.Effectiveness = res.Effectiveness
	out.NTU = res.NTU
	out.Cr = res.Cr
	out.Cmin = res.Cmin
	out.Cmax = res.Cmax
	out.Thi = res.Thi
	out.Tho = res.Tho
	out.Tci = res.Tci
	out.Tco = res.Tco
	return out
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringP("inFile", "I", "", "CSV file of exchanger cases")
	batchCmd.Flags().StringP("outFile", "O", "", "CSV file to write solved states to")
}
