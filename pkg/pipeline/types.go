// Package pipeline reads and summarizes the declarative CI workflow
// definitions under .github/workflows. The definitions are consumed by an
// external scheduler; this package only inspects them, it never executes
// anything.
package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Workflow is the subset of a workflow definition the CLI cares about.
type Workflow struct {
	Path string   `yaml:"-"`
	Name string   `yaml:"name"`
	On   Triggers `yaml:"on"`
	Jobs map[string]Job
}

// Job is a single named unit of work inside a workflow.
type Job struct {
	Name   string `yaml:"name"`
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step is one entry in a job's step list.
type Step struct {
	Name string `yaml:"name"`
	Uses string `yaml:"uses"`
	Run  string `yaml:"run"`
}

// Triggers captures the events a workflow reacts to. The upstream schema
// allows a bare string, a sequence, or a mapping for the "on" key, so
// decoding is shape-aware.
type Triggers struct {
	Push        *RefFilter
	PullRequest *RefFilter
	Schedule    []Cron
}

// RefFilter narrows an event to branch or tag patterns.
type RefFilter struct {
	Branches []string `yaml:"branches"`
	Tags     []string `yaml:"tags"`
}

// Cron is one scheduled trigger entry.
type Cron struct {
	Cron string `yaml:"cron"`
}

// UnmarshalYAML accepts the three shapes the schema permits for "on".
func (t *Triggers) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var event string
		if err := node.Decode(&event); err != nil {
			return err
		}
		t.setEvent(event, nil)
		return nil
	case yaml.SequenceNode:
		var events []string
		if err := node.Decode(&events); err != nil {
			return err
		}
		for _, event := range events {
			t.setEvent(event, nil)
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			Push        *RefFilter `yaml:"push"`
			PullRequest *RefFilter `yaml:"pull_request"`
			Schedule    []Cron     `yaml:"schedule"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		t.Push = m.Push
		t.PullRequest = m.PullRequest
		t.Schedule = m.Schedule
		return nil
	}
	return fmt.Errorf("unsupported node kind %d for trigger block", node.Kind)
}

func (t *Triggers) setEvent(event string, filter *RefFilter) {
	if filter == nil {
		filter = &RefFilter{}
	}
	switch event {
	case "push":
		t.Push = filter
	case "pull_request":
		t.PullRequest = filter
	}
}

// HasAnyTrigger reports whether at least one recognized trigger is present.
func (t *Triggers) HasAnyTrigger() bool {
	return t.Push != nil || t.PullRequest != nil || len(t.Schedule) > 0
}
