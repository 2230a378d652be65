// Package scadbench benchmarks language models on constrained CAD
// generation: given a natural-language mechanical part specification, the
// model must emit a parametric OpenSCAD script that the external renderer
// accepts and turns into image output from every declared camera view.
//
// The library packages are layered leaves-first: pkg/sandbox provides the
// path-jailed file capabilities handed to the model, pkg/validate scores a
// finished run, pkg/registry indexes the shipped pkg/tasks, and pkg/eval
// sequences single evaluations and whole model meshes. The scadbench binary
// under cmd/scadbench wires them to the OpenSCAD renderer and an
// OpenAI-compatible provider.
package scadbench

// Version is the current scadbench release.
const Version = "0.1.0"
