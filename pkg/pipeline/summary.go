package pipeline

import (
	"fmt"
	"strings"
)

// Summary is a one-line human description of what starts a workflow.
type Summary struct {
	Name     string
	Path     string
	Triggers []string
	Jobs     int
}

// Summarize reduces a workflow to its trigger description.
func Summarize(wf Workflow) Summary {
	var triggers []string

	if wf.On.Push != nil {
		triggers = append(triggers, describeFilter("push", wf.On.Push))
	}
	if wf.On.PullRequest != nil {
		triggers = append(triggers, describeFilter("pull request", wf.On.PullRequest))
	}
	for _, c := range wf.On.Schedule {
		triggers = append(triggers, describeCron(c.Cron))
	}
	if len(triggers) == 0 {
		triggers = append(triggers, "no recognized triggers")
	}

	return Summary{
		Name:     wf.Name,
		Path:     wf.Path,
		Triggers: triggers,
		Jobs:     len(wf.Jobs),
	}
}

func describeFilter(event string, f *RefFilter) string {
	switch {
	case len(f.Tags) > 0:
		return fmt.Sprintf("%s of tags matching %s", event, strings.Join(f.Tags, ", "))
	case len(f.Branches) > 0:
		return fmt.Sprintf("%s to %s", event, strings.Join(f.Branches, ", "))
	}
	return event
}

// describeCron renders common cron shapes in words and falls back to the
// raw expression otherwise.
func describeCron(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return fmt.Sprintf("schedule %q", expr)
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	if dom == "*" && month == "*" && dow != "*" {
		return fmt.Sprintf("weekly on %s at %s:%s", weekdayName(dow), pad(hour), pad(minute))
	}
	if dom == "*" && month == "*" && dow == "*" && hour != "*" {
		return fmt.Sprintf("daily at %s:%s", pad(hour), pad(minute))
	}
	return fmt.Sprintf("schedule %q", expr)
}

func weekdayName(dow string) string {
	names := map[string]string{
		"0": "Sunday", "1": "Monday", "2": "Tuesday", "3": "Wednesday",
		"4": "Thursday", "5": "Friday", "6": "Saturday", "7": "Sunday",
	}
	if name, ok := names[dow]; ok {
		return name
	}
	return dow
}

func pad(field string) string {
	if len(field) == 1 {
		return "0" + field
	}
	return field
}
