package domain

import (
	"strings"
	"testing"
)

func validManifest() Manifest {
	return Manifest{
		Name:         "recap",
		Version:      "1.0.0",
		Binary:       "/usr/local/lib/pokerlog/recap",
		SHA256:       strings.Repeat("a", 64),
		Enabled:      true,
		Capabilities: []Capability{CapabilityReport},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Manifest)
	}{
		{"missing name", func(m *Manifest) { m.Name = "" }},
		{"missing version", func(m *Manifest) { m.Version = "" }},
		{"missing binary", func(m *Manifest) { m.Binary = "" }},
		{"short sha", func(m *Manifest) { m.SHA256 = "abc123" }},
		{"uppercase sha", func(m *Manifest) { m.SHA256 = strings.Repeat("A", 64) }},
		{"no capabilities", func(m *Manifest) { m.Capabilities = nil }},
		{"unknown capability", func(m *Manifest) { m.Capabilities = []Capability{"fullscreen_tty"} }},
		{"duplicate capability", func(m *Manifest) {
			m.Capabilities = []Capability{CapabilityReport, CapabilityReport}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validManifest()
			tc.mutate(&m)
			if err := m.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestRunRequestValidate(t *testing.T) {
	t.Parallel()
	req := RunRequest{
		CommandID: "profit-recap",
		Context:   RunContext{DataDir: "/data", Username: "alice"},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	noUser := req
	noUser.Context.Username = ""
	if err := noUser.Validate(); err == nil {
		t.Fatal("request without username must be rejected")
	}
	noCommand := req
	noCommand.CommandID = ""
	if err := noCommand.Validate(); err == nil {
		t.Fatal("request without command id must be rejected")
	}
}
