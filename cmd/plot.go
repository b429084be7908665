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
	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/OilCoder/reservoir-simulation-sub001/gridgen"
	"github.com/OilCoder/reservoir-simulation-sub001/utils"
)

// plotTriangulation displays the Delaunay triangulation underlying the PEBI
// mesh, holding the window open for delay milliseconds
func plotTriangulation(res *gridgen.Result, delay int) {
	var (
		X = make([]float64, len(res.Tri.Points))
		Y = make([]float64, len(res.Tri.Points))
	)
	for i, p := range res.Tri.Points {
		X[i], Y[i] = p[0], p[1]
	}
	tris := make([]graphics2D.Triangle, len(res.Tri.Tris))
	for i, t := range res.Tri.Tris {
		tris[i].Nodes = [3]int32{t[0], t[1], t[2]}
	}
	triMesh := graphics2D.TriMesh{
		BaseGeometryClass: graphics2D.BaseGeometryClass{
			Geometry: utils.ArraysToPoints(X, Y),
		},
		Triangles:  tris,
		Attributes: nil,
	}
	colorMap := utils2.NewColorMap(0, 1, 1)
	box := graphics2D.NewBoundingBox(triMesh.GetGeometry())
	chart := chart2d.NewChart2D(1024, 1024, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	if err := chart.AddTriMesh("TriMesh", triMesh.Geometry, triMesh,
		chart2d.CrossGlyph, chart2d.Solid, utils.GetColor(utils.White)); err != nil {
		panic("unable to add graph series")
	}
	utils.SleepFor(delay)
}
