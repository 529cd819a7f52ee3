package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	stdout, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "Wrote sample configuration to "+target) {
		t.Fatalf("unexpected output: %q", stdout)
	}

	body, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(body), "ptouch-print") {
		t.Fatalf("sample config missing printer command: %q", body)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("domain = \"keep.example.com\"\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}

	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("Execute with --overwrite returned error: %v", err)
	}
}

func TestConfigValidateReportsDefaults(t *testing.T) {
	isolateEnv(t)

	stdout, err := runCommand(t, "config", "validate")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected output: %q", stdout)
	}
	if !strings.Contains(stdout, "defaults were used") {
		t.Fatalf("expected defaults notice, got %q", stdout)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HOMEBOX_DOMAIN", "box.example.com")

	stdout, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "domain = 'box.example.com'") && !strings.Contains(stdout, `domain = "box.example.com"`) {
		t.Fatalf("expected resolved domain in output, got %q", stdout)
	}
	if !strings.Contains(stdout, "tape_height = 76") {
		t.Fatalf("expected label geometry in output, got %q", stdout)
	}
}

func TestDepsReportsPrinterStatus(t *testing.T) {
	isolateEnv(t)

	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ptouch-print")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	stdout, err := runCommand(t, "deps")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "Print utility") || !strings.Contains(stdout, "ok") {
		t.Fatalf("unexpected deps output: %q", stdout)
	}
}

func TestDepsReportsMissingPrinter(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PATH", t.TempDir())

	stdout, err := runCommand(t, "deps")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "missing (optional)") {
		t.Fatalf("expected missing printer report, got %q", stdout)
	}
}
