// Package tasks holds the shipped benchmark task definitions. Each task asks
// the model for one parametric OpenSCAD part and validates the result by
// rendering it from two camera views.
package tasks

import (
	"fmt"

	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/scadbench/scadbench/pkg/sandbox"
	"github.com/scadbench/scadbench/pkg/validate"
)

// bottomIsometric looks at the part from below so hidden features (pockets,
// counterbores, underside fillets) show up in the render.
var bottomIsometric = &validate.Camera{
	Rotation: [3]float64{225, 0, 45},
}

// partViews declares the fixed view sequence every shipped task uses:
// the renderer default view first, then the bottom isometric.
func partViews(name string) []validate.View {
	return []validate.View{
		{Name: "default", Key: "defaultView", Output: name + ".png"},
		{Name: "bottom-isometric", Key: "bottomView", Output: name + "-bottom.png", Camera: bottomIsometric},
	}
}

// part builds one task descriptor around a natural-language specification.
// The working-directory binding of the tool set happens at execution time.
func part(r validate.Renderer, name, description, specification string) domain.Task {
	artifact := name + ".scad"
	prompt := fmt.Sprintf(`You are a mechanical CAD engineer. Write a complete, parametric OpenSCAD script for the part specified below.

Specification:
%s

Requirements:
- Express every dimension as a named variable at the top of the script so the part is parametric.
- The script must produce a single solid, manifold part.
- Use the write_file tool to save the script as %q. Do not output the script as text.`, specification, artifact)

	return domain.Task{
		Name:        name,
		Description: description,
		Prompt:      prompt,
		Mode:        domain.MultiTurn,
		Tools:       sandbox.Tools,
		Validate: validate.Pipeline{
			TaskName: name,
			Artifact: artifact,
			Views:    partViews(name),
			Renderer: r,
		}.Func(),
	}
}

// All returns the shipped task set wired to the given renderer, in the order
// they are benchmarked.
func All(r validate.Renderer) []domain.Task {
	return []domain.Task{
		Bracket(r),
		Flange(r),
		SpurGear(r),
	}
}

// Bracket is an L-shaped mounting bracket with bolt holes.
func Bracket(r validate.Renderer) domain.Task {
	return part(r, "bracket",
		"L-shaped mounting bracket with four bolt holes",
		`An L-shaped mounting bracket, 5 mm thick. The vertical leg is 60 mm tall and 40 mm wide; the horizontal leg is 50 mm deep and 40 mm wide. Each leg carries two 5 mm diameter through-holes on its centerline, 10 mm from the outer edges. Add a 5 mm triangular gusset joining the two legs at both sides.`)
}

// Flange is a circular pipe flange with a bolt circle.
func Flange(r validate.Renderer) domain.Task {
	return part(r, "flange",
		"circular pipe flange with six-bolt circle",
		`A circular pipe flange: outer diameter 120 mm, thickness 12 mm, with a central bore of 50 mm diameter. A raised hub of 70 mm diameter and 10 mm additional height surrounds the bore. Six 9 mm diameter bolt holes are equally spaced on a 95 mm bolt circle.`)
}

// SpurGear is a simplified spur gear blank with keyed bore.
func SpurGear(r validate.Renderer) domain.Task {
	return part(r, "spur-gear",
		"20-tooth spur gear with keyed shaft bore",
		`A simplified spur gear: 20 trapezoidal teeth on a 60 mm pitch diameter, face width 10 mm. The shaft bore is 15 mm diameter with a 5 mm wide, 2.5 mm deep keyway. Tooth geometry may be approximated with radial trapezoids; involute profiles are not required.`)
}
