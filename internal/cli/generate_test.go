// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/cli"
)

func TestGenerateCommandHexFormat(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs([]string{"generate", "--accent", "#3D63DD", "--gray", "#8B8D98", "--background", "#FFFFFF"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, errBuf.String())
	}

	out := outBuf.String()
	if !strings.Contains(out, "accentScale[1]") {
		t.Errorf("hex output missing accentScale[1] line:\n%s", out)
	}
	if !strings.Contains(out, "background") || !strings.Contains(out, "#FFFFFF") {
		t.Errorf("hex output missing background line:\n%s", out)
	}
}

func TestGenerateCommandJSONFormat(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetArgs([]string{
		"generate", "--appearance", "dark",
		"--accent", "#0090FF", "--gray", "#8B8D98", "--background", "#111111",
		"--format", "json",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := outBuf.String()
	if !strings.Contains(out, `"accentScale"`) || !strings.Contains(out, `"background"`) {
		t.Errorf("json output missing expected keys:\n%s", out)
	}
}

func TestGenerateCommandYAMLFormat(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetArgs([]string{
		"generate", "--accent", "#3D63DD", "--gray", "#8B8D98", "--background", "#FFFFFF",
		"--format", "yaml",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := outBuf.String()
	if !strings.Contains(out, "accentScale:") || !strings.Contains(out, "background:") {
		t.Errorf("yaml output missing expected keys:\n%s", out)
	}
}

func TestGenerateCommandSwatchFormat(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetArgs([]string{
		"generate", "--accent", "#3D63DD", "--gray", "#8B8D98", "--background", "#FFFFFF",
		"--format", "swatch",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if outBuf.Len() == 0 {
		t.Error("swatch output is empty")
	}
}

func TestGenerateCommandInvalidHex(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs([]string{"generate", "--accent", "not-a-color", "--gray", "#8B8D98", "--background", "#FFFFFF"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() with invalid accent hex should return an error")
	}
}

func TestGenerateCommandInvalidFormat(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs([]string{
		"generate", "--accent", "#3D63DD", "--gray", "#8B8D98", "--background", "#FFFFFF",
		"--format", "bmp",
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() with an unknown --format should return an error")
	}
}

func TestVersionCommand(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(outBuf.String(), "tonal version") {
		t.Errorf("version output = %q, want it to contain \"tonal version\"", outBuf.String())
	}
}
