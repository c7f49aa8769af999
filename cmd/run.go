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
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ShihengDuan/columndg/DG1D"
	"github.com/ShihengDuan/columndg/balance"
	"github.com/ShihengDuan/columndg/input"
	"github.com/ShihengDuan/columndg/output"
	"github.com/ShihengDuan/columndg/solver"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Integrate the heat column to the target end time",
	Long: `
Builds the column mesh, binds the heat model, selects the time step from
the Fourier stability bound and integrates, writing NetCDF records at
the configured cadence.

columndg run -I params.yaml -o solution.nc`,
	Run: func(cmd *cobra.Command, args []string) {
		params := input.DefaultParameters()
		if paramFile, _ := cmd.Flags().GetString("inputParametersFile"); paramFile != "" {
			data, err := os.ReadFile(paramFile)
			if err != nil {
				fatal(err)
			}
			if err = params.Parse(data); err != nil {
				fatal(err)
			}
		}
		if cmd.Flags().Changed("n") {
			params.PolynomialOrder, _ = cmd.Flags().GetInt("n")
		}
		if cmd.Flags().Changed("k") {
			params.NumElements, _ = cmd.Flags().GetInt("k")
		}
		if cmd.Flags().Changed("finalTime") {
			params.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		if cmd.Flags().Changed("outputEvery") {
			params.OutputEvery, _ = cmd.Flags().GetFloat64("outputEvery")
		}
		if err := params.Validate(); err != nil {
			fatal(err)
		}
		params.Print()

		if cpuProfile, _ := cmd.Flags().GetBool("cpuprofile"); cpuProfile {
			defer profile.Start().Stop()
		}
		outFile, _ := cmd.Flags().GetString("outFile")
		plotFile, _ := cmd.Flags().GetString("plotFile")
		if err := runColumn(&params, outFile, plotFile); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of simulation parameters")
	runCmd.Flags().IntP("n", "n", 0, "polynomial degree")
	runCmd.Flags().IntP("k", "k", 0, "number of elements in the column")
	runCmd.Flags().Float64("finalTime", 0, "target end time for the sim")
	runCmd.Flags().Float64("outputEvery", 0, "seconds of simulated time between output records")
	runCmd.Flags().StringP("outFile", "o", "solution.nc", "NetCDF output file")
	runCmd.Flags().String("plotFile", "", "write a final temperature profile plot (.png)")
	runCmd.Flags().Bool("cpuprofile", false, "write a cpu profile")
}

func runColumn(params *input.SimulationParameters, outFile, plotFile string) error {
	el, err := DG1D.NewColumn(params.PolynomialOrder,
		DG1D.UniformMesh1D(0, params.Depth, params.NumElements))
	if err != nil {
		return err
	}
	model := balance.NewHeatColumn(balance.HeatColumnParameters{
		RhoC:    params.RhoC,
		Alpha:   params.Alpha,
		T0:      params.T0,
		TBottom: params.TBottom,
		TopFlux: params.TopFlux,
	})
	op, err := solver.NewDGOperator(el, model)
	if err != nil {
		return err
	}

	// fixed dt from the stability bound, snapped so the final step
	// lands exactly on FinalTime
	dt := solver.StableTimeStep(el, params.Alpha, params.Fourier)
	nSteps := math.Ceil(params.FinalTime / dt)
	dt = params.FinalTime / nSteps
	logrus.WithFields(logrus.Fields{
		"dt":    dt,
		"steps": int(nSteps),
		"dxMin": el.MinNodeSpacing(),
	}).Info("time step selected")

	state, _ := op.InitialState()
	ti, err := solver.NewTimeIntegrator(op, state, dt, 0, params.FinalTime)
	if err != nil {
		return err
	}

	varNames := append(model.ConservativeVars(), model.AuxiliaryVars()...)
	w, err := output.NewWriter(outFile, el.GlobalCoordinates(), varNames)
	if err != nil {
		return err
	}
	// records written so far is owned here, not by the integrator
	var written int
	err = ti.SetStepCallback(params.OutputEvery, func(snap solver.Snapshot) error {
		if werr := w.WriteRecord(snap.Time, snap.Fields); werr != nil {
			return werr
		}
		written++
		return nil
	})
	if err != nil {
		return err
	}

	if err = ti.Run(); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"records": written,
		"steps":   ti.StepsTaken(),
		"time":    ti.Time(),
	}).Info("run complete")

	if plotFile != "" {
		snap := op.Snapshot(ti.State(), ti.Time())
		if err = output.PlotProfile(plotFile, balance.VarT,
			el.GlobalCoordinates(), snap.Fields[balance.VarT]); err != nil {
			return err
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Printf("error: %s\n", err.Error())
	os.Exit(1)
}
