package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/subcommands"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script extensions are not supported on windows")
	}

	tempDir := t.TempDir()

	// A tiny extension that succeeds only when the workbook path was handed over.
	script := "#!/bin/sh\n[ -n \"$" + EnvWorkbookFile + "\" ] || exit 3\nexit 0\n"
	scriptPath := filepath.Join(tempDir, "dvd-hello")
	if err := os.WriteFile(scriptPath, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write dvd-hello: %v", err)
	}

	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", tempDir+string(os.PathListSeparator)+oldPath)
	defer os.Setenv("PATH", oldPath)

	found, code := RunExtension("hello", nil)
	if !found {
		t.Fatal("expected dvd-hello to be found in PATH")
	}
	if code != 0 {
		t.Errorf("dvd-hello exited with %d, want 0", code)
	}

	found, code = RunExtension("no-such-extension", nil)
	if found || code != 0 {
		t.Errorf("RunExtension on a missing binary = (%v, %d), want (false, 0)", found, code)
	}
}

func TestKnown(t *testing.T) {
	Register(subcommands.NewCommander(flag.NewFlagSet("dvd", flag.ContinueOnError), "dvd"))

	for _, name := range []string{"help", "monthly", "fire"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if Known("hello") {
		t.Error(`Known("hello") = true, want false`)
	}
}
