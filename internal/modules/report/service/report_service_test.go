package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	reportout "pokerlog/internal/modules/report/adapter/out"
	"pokerlog/internal/modules/report/domain"
	"pokerlog/internal/modules/report/dto"
	"pokerlog/internal/modules/report/service"
)

type fakeHost struct {
	commands []domain.CommandDescriptor
	lastRun  domain.RunRequest
}

func (h *fakeHost) CheckLifecycle(_ context.Context, _ domain.Manifest) error { return nil }

func (h *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Capabilities: m.Capabilities}, nil
}

func (h *fakeHost) ListCommands(_ context.Context, _ domain.Manifest) ([]domain.CommandDescriptor, error) {
	return h.commands, nil
}

func (h *fakeHost) Run(_ context.Context, _ domain.Manifest, input domain.RunRequest) (domain.RunResult, error) {
	h.lastRun = input
	return domain.RunResult{Stdout: "ok", OutputJSON: `{"done":true}`}, nil
}

func writeManifests(t *testing.T, dataDir string, manifests []domain.Manifest) {
	t.Helper()
	reportsDir := filepath.Join(dataDir, "reports")
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		t.Fatalf("mkdir reports: %v", err)
	}
	raw, _ := json.Marshal(manifests)
	if err := os.WriteFile(filepath.Join(reportsDir, "reports.json"), raw, 0o644); err != nil {
		t.Fatalf("write reports.json: %v", err)
	}
}

func writeBinary(t *testing.T, dataDir string) (path, checksum string) {
	t.Helper()
	path = filepath.Join(dataDir, "recap-bin")
	payload := []byte("not-a-real-plugin")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write plugin binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	binPath, _ := writeBinary(t, tmp)
	writeManifests(t, tmp, []domain.Manifest{{
		Name:         "recap",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       strings.Repeat("0", 64),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}})

	svc := service.NewReportService(reportout.NewFileManifestStore(tmp), nil, tmp)
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].ChecksumValid {
		t.Fatal("expected checksum mismatch")
	}
	if !results[0].BinaryReachable {
		t.Fatal("binary exists, expected reachable")
	}
}

func TestRunShipsSnapshotAndGatesCapability(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	binPath, checksum := writeBinary(t, tmp)
	writeManifests(t, tmp, []domain.Manifest{{
		Name:         "recap",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}})
	host := &fakeHost{commands: []domain.CommandDescriptor{
		{ID: "profit-recap", Kind: domain.CommandKindReport},
	}}
	svc := service.NewReportService(reportout.NewFileManifestStore(tmp), host, tmp)

	input := dto.RunInput{PluginName: "recap", CommandID: "profit-recap", Username: "alice"}
	out, err := svc.Run(context.Background(), input, `{"username":"alice","sessions":[]}`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Stdout != "ok" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if host.lastRun.Context.SnapshotJSON == "" || host.lastRun.Context.Username != "alice" {
		t.Fatalf("run context missing snapshot or user: %+v", host.lastRun.Context)
	}

	if _, err := svc.Analyze(context.Background(), input, "{}"); !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected capability gate, got %v", err)
	}
}

func TestRunRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	binPath, checksum := writeBinary(t, tmp)
	writeManifests(t, tmp, []domain.Manifest{{
		Name:         "recap",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      false,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}})
	svc := service.NewReportService(reportout.NewFileManifestStore(tmp), &fakeHost{}, tmp)

	_, err := svc.Run(context.Background(), dto.RunInput{PluginName: "recap", CommandID: "profit-recap", Username: "alice"}, "{}")
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	binPath, checksum := writeBinary(t, tmp)
	writeManifests(t, tmp, []domain.Manifest{{
		Name:         "recap",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}})
	host := &fakeHost{commands: []domain.CommandDescriptor{
		{ID: "profit-recap", Kind: domain.CommandKindReport},
	}}
	svc := service.NewReportService(reportout.NewFileManifestStore(tmp), host, tmp)

	_, err := svc.Run(context.Background(), dto.RunInput{PluginName: "recap", CommandID: "nope", Username: "alice"}, "{}")
	if !errors.Is(err, domain.ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
}
