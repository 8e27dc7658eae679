package domain

import (
	"errors"
	"fmt"
	"regexp"
)

type Capability string

const (
	CapabilityReport  Capability = "report"
	CapabilityAnalyze Capability = "analyze"
)

var (
	ErrPluginDisabled    = errors.New("report plugin is disabled")
	ErrChecksumMismatch  = errors.New("report plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("report plugin capability missing")
	ErrCommandNotFound   = errors.New("report command not found")
	ErrPluginTimeout     = errors.New("report plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed report plugin. The binary is only run
// when its checksum still matches the manifest.
type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("report plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("report plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("report plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("report plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("report plugin capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityReport, CapabilityAnalyze:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type CommandKind string

const (
	CommandKindReport  CommandKind = "report"
	CommandKindAnalyze CommandKind = "analyze"
)

func (k CommandKind) Validate() error {
	switch k {
	case CommandKindReport, CommandKindAnalyze:
		return nil
	default:
		return fmt.Errorf("unknown command kind: %s", k)
	}
}

type CommandDescriptor struct {
	ID              string
	Title           string
	Description     string
	Kind            CommandKind
	InputSchemaJSON string
	TimeoutMS       int
}

func (d CommandDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("command id is required")
	}
	return d.Kind.Validate()
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// RunContext is handed to the plugin alongside every call. SnapshotJSON is
// the user's full export; plugins never touch the store directly.
type RunContext struct {
	DataDir      string
	Username     string
	SnapshotJSON string
	Env          map[string]string
}

func (c RunContext) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

type RunRequest struct {
	CommandID string
	InputJSON string
	Context   RunContext
}

func (r RunRequest) Validate() error {
	if r.CommandID == "" {
		return fmt.Errorf("command id is required")
	}
	return r.Context.Validate()
}

type RunResult struct {
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
}
