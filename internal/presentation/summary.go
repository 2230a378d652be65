// Package presentation renders evaluation outcomes for the console.
package presentation

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/scadbench/scadbench/pkg/domain"
)

var profile = termenv.ColorProfile()

func pass() string {
	return termenv.String("PASS").Foreground(profile.Color("10")).Bold().String()
}

func fail() string {
	return termenv.String("FAIL").Foreground(profile.Color("9")).Bold().String()
}

// PrintTaskResult writes one task status line: pass/fail plus reason.
func PrintTaskResult(w io.Writer, r domain.TaskResult) {
	if r.Success {
		fmt.Fprintf(w, "  %s %s (%s)\n", pass(), r.TaskName, r.OutputPath)
		return
	}
	fmt.Fprintf(w, "  %s %s: %s\n", fail(), r.TaskName, r.Error)
}

// PrintMeshResult writes one model-level status line.
func PrintMeshResult(w io.Writer, r domain.MeshResult) {
	if r.Success {
		fmt.Fprintf(w, "%s %s [%s]\n", pass(), r.Model, r.Task)
		return
	}
	fmt.Fprintf(w, "%s %s [%s]: %s\n", fail(), r.Model, r.Task, r.Error)
}

// PrintSummary writes the final aggregate: counts, success percentage, and
// the failing entries with their messages.
func PrintSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "\nSummary: %d total, %d passed, %d failed (%.0f%%)\n",
		s.Total, s.Successful, s.Failed, s.SuccessRate()*100)

	if len(s.Failures) == 0 {
		return
	}

	fmt.Fprintln(w, "Failures:")
	for _, f := range s.Failures {
		fmt.Fprintf(w, "  %s [%s]: %s\n", f.Model, f.Task, f.Error)
	}
}
