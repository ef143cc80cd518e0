package app

import (
	"encoding/json"
	"fmt"

	"github.com/vk/shellforge/internal/resolve"
	"github.com/vk/shellforge/internal/runner"
)

// reportView is the JSON shape of a finished run, consumable by an
// external shell-construction mechanism.
type reportView struct {
	RunID     string                  `json:"run_id"`
	Revision  string                  `json:"revision,omitempty"`
	Platforms map[string]platformView `json:"platforms"`
}

type platformView struct {
	Record *resolve.Record `json:"record,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// render writes the report to the App's output writer in the configured
// format.
func (a *App) render(report *runner.Report) error {
	if a.config.Output == "json" {
		return a.renderJSON(report)
	}
	return a.renderText(report)
}

func (a *App) renderJSON(report *runner.Report) error {
	view := reportView{
		RunID:     report.RunID,
		Revision:  report.Revision,
		Platforms: make(map[string]platformView, len(report.Results)),
	}
	for p, res := range report.Results {
		pv := platformView{Record: res.Record}
		if res.Err != nil {
			pv.Error = res.Err.Error()
		}
		view.Platforms[p] = pv
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func (a *App) renderText(report *runner.Report) error {
	for _, p := range report.Platforms() {
		res := report.Results[p]
		if res.Err != nil {
			if _, err := fmt.Fprintf(a.outW, "%s: error: %v\n", p, res.Err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(a.outW, "%s:\n", p); err != nil {
			return err
		}
		for _, ref := range res.Record.Tools {
			line := fmt.Sprintf("  %s %s", ref.Name, ref.Version)
			if ref.Channel != "" {
				line += fmt.Sprintf(" (%s)", ref.Channel)
			}
			if ref.Locator != "" {
				line += "  " + ref.Locator
			}
			if _, err := fmt.Fprintln(a.outW, line); err != nil {
				return err
			}
		}
		if res.Record.Startup != "" {
			if _, err := fmt.Fprintf(a.outW, "  startup: %s\n", res.Record.Startup); err != nil {
				return err
			}
		}
	}
	return nil
}
