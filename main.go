// gosctl – Project GOS scaffold CLI
// Applies the fixed GOS analysis-stack layout (core engines, pipeline,
// sim, api, storage, ui, ops) onto an existing Git working tree without
// destroying customized content, then drives branch/commit/PR workflow.
package main

import (
	"os"
	"time"

	"github.com/project-gos/gosctl/cmd"
	"github.com/project-gos/gosctl/internal/audit"
	"github.com/project-gos/gosctl/internal/exitcode"
	"github.com/project-gos/gosctl/internal/output"
	_ "github.com/project-gos/gosctl/schemas"
)

func main() {
	start := time.Now()
	if err := cmd.Execute(); err != nil {
		code := exitcode.Of(err)
		event := audit.BuildEvent(os.Args, "failure", code, time.Since(start))
		_ = audit.Write(event)
		output.PrintError(err)
		os.Exit(code)
	}

	event := audit.BuildEvent(os.Args, "success", exitcode.OK, time.Since(start))
	_ = audit.Write(event)
}
