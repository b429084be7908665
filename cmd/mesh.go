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
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/OilCoder/reservoir-simulation-sub001/InputParameters"
	"github.com/OilCoder/reservoir-simulation-sub001/gridgen"
)

type MeshModel struct {
	ParamFile  string
	Graph      bool
	Delay      int
	OutputFile string
	Profile    bool
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate the fault- and well-aware PEBI simulation mesh",
	Long: `Reads a YAML mesh parameter file, runs the meshing pipeline and
prints the validation report. The pipeline aborts on the first violated
invariant; there is no degraded or partial output.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mm  = &MeshModel{}
		)
		if mm.ParamFile, err = cmd.Flags().GetString("paramFile"); err != nil {
			panic(err)
		}
		mm.Graph, _ = cmd.Flags().GetBool("graph")
		mm.Delay, _ = cmd.Flags().GetInt("delay")
		mm.OutputFile, _ = cmd.Flags().GetString("output")
		mm.Profile, _ = cmd.Flags().GetBool("profile")
		if mm.Profile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		mp := processMeshInput(mm)
		RunMesh(mm, mp)
	},
}

func init() {
	MeshCmd.Flags().StringP("paramFile", "F", "", "YAML mesh parameter file")
	MeshCmd.Flags().BoolP("graph", "g", false, "display the triangulation while meshing")
	MeshCmd.Flags().IntP("delay", "d", 0, "milliseconds to hold the plot open")
	MeshCmd.Flags().StringP("output", "o", "", "write a JSON mesh summary to this file")
	MeshCmd.Flags().Bool("profile", false, "write a CPU profile for the meshing run")
}

func processMeshInput(mm *MeshModel) (mp *InputParameters.MeshParameters) {
	if len(mm.ParamFile) == 0 {
		err := fmt.Errorf("must supply a mesh parameter file (-F, --paramFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Example Field"
FieldExtentX: 3280.
FieldExtentY: 2950.
BackgroundCellSize: 150.
Wells:
  - {Name: PROD-1, SurfaceX: 1000., SurfaceY: 1000., Tier: critical}
WellTiers:
  critical: {CellSize: 20., InfluenceRadius: 500.}
Faults:
  - {Name: F-1, StrikeDeg: 90., Length: 3280., CenterOffsetX: 1640., CenterOffsetY: 1500.,
     Sealing: true, TransmissibilityMultiplier: 0.01, Tier: major}
FaultTiers:
  major: {CellSize: 25., BufferDistance: 100.}
LayerCount: 12
TopStructureDepth: 7900.
BaseStructureDepth: 8240.
########################################
`
		fmt.Printf("Example parameter file:%s", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(mm.ParamFile)
	if err != nil {
		fmt.Printf("unable to read parameter file %s: %s\n", mm.ParamFile, err.Error())
		os.Exit(1)
	}
	mp = &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		fmt.Printf("unable to parse parameter file %s: %s\n", mm.ParamFile, err.Error())
		os.Exit(1)
	}
	if err = mp.Validate(); err != nil {
		fmt.Printf("%s\n", err.Error())
		os.Exit(1)
	}
	mp.Print()
	return
}

func RunMesh(mm *MeshModel, mp *InputParameters.MeshParameters) {
	ctx := gridgen.NewContext(mp)
	res, err := gridgen.GenerateGrid(ctx)
	if err != nil {
		fmt.Printf("mesh generation failed: %s\n", err.Error())
		if res != nil && res.Report != nil {
			fmt.Println(res.Report)
		}
		os.Exit(1)
	}
	fmt.Println(res.Report)
	if mm.Graph {
		plotTriangulation(res, mm.Delay)
	}
	if len(mm.OutputFile) != 0 {
		if err = writeSummary(mm.OutputFile, mp.Title, res); err != nil {
			fmt.Printf("unable to write mesh summary: %s\n", err.Error())
			os.Exit(1)
		}
	}
}

// MeshSummary is the JSON handed to downstream property-assignment tooling
type MeshSummary struct {
	Title          string      `json:"title"`
	CellCount      int         `json:"cell_count"`
	FaceCount      int         `json:"face_count"`
	NodeCount      int         `json:"node_count"`
	LayerCount     int         `json:"layer_count"`
	LayerThickness float64     `json:"layer_thickness"`
	FaultFaces     []FaultFace `json:"fault_faces"`
}

type FaultFace struct {
	Face       int     `json:"face"`
	Layer      int     `json:"layer"`
	Multiplier float64 `json:"multiplier"`
}

func writeSummary(path, title string, res *gridgen.Result) error {
	summary := MeshSummary{
		Title:          title,
		CellCount:      len(res.Mesh3D.Cells),
		FaceCount:      len(res.Mesh3D.Faces),
		NodeCount:      len(res.Mesh3D.Nodes),
		LayerCount:     res.Mesh3D.LayerCount,
		LayerThickness: res.Mesh3D.LayerThickness(),
	}
	for i, f := range res.Mesh3D.Faces {
		if f.IsFault {
			summary.FaultFaces = append(summary.FaultFaces, FaultFace{
				Face:       i,
				Layer:      f.Layer,
				Multiplier: f.FaultMultiplier,
			})
		}
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
