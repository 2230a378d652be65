package eval

import (
	"fmt"
	"strings"
	"time"
)

// RunDirName derives the ledger directory name for one evaluation run:
// run-<YYYYMMDD>-<HHMMSS>-<sanitizedModel>. Path separators in the model
// identifier are replaced with dashes so the result is always a single
// directory segment. Deterministic given both inputs; two runs started in
// the same second with the same model collide, which is accepted (see
// DESIGN.md).
func RunDirName(model string, ts time.Time) string {
	sanitized := strings.NewReplacer("/", "-", "\\", "-").Replace(model)
	return fmt.Sprintf("run-%s-%s", ts.Format("20060102-150405"), sanitized)
}
