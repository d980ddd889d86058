package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dayboard-notifier.lock")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func withFindProcess(t *testing.T, fn func(int) (ps.Process, error)) {
	t.Helper()
	orig := findProcessFunc
	findProcessFunc = fn
	t.Cleanup(func() { findProcessFunc = orig })
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	withFindProcess(t, func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "dayboard-tray"}, nil
	})

	port, secret, err := findAndValidateTrayProcess(writeLockfile(t, "8123|4242|s3cret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "8123" || secret != "s3cret" {
		t.Errorf("got port %q secret %q", port, secret)
	}
}

func TestFindAndValidateTrayProcessRejects(t *testing.T) {
	tests := []struct {
		name     string
		lockfile string
	}{
		{"missing fields", "8123|4242"},
		{"extra fields", "8123|4242|s3cret|junk"},
		{"non-numeric port", "abc|4242|s3cret"},
		{"port out of range", "70000|4242|s3cret"},
		{"zero port", "0|4242|s3cret"},
		{"non-numeric pid", "8123|abc|s3cret"},
		{"empty secret", "8123|4242| "},
	}

	withFindProcess(t, func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "dayboard-tray"}, nil
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := findAndValidateTrayProcess(writeLockfile(t, tt.lockfile)); err == nil {
				t.Error("malformed lockfile should be rejected")
			}
		})
	}
}

func TestFindAndValidateTrayProcessWrongExecutable(t *testing.T) {
	withFindProcess(t, func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "impostor"}, nil
	})

	if _, _, err := findAndValidateTrayProcess(writeLockfile(t, "8123|4242|s3cret")); err == nil {
		t.Error("a process that is not the tray app should be rejected")
	}
}

func TestFindAndValidateTrayProcessNotRunning(t *testing.T) {
	withFindProcess(t, func(pid int) (ps.Process, error) {
		return nil, nil
	})

	if _, _, err := findAndValidateTrayProcess(writeLockfile(t, "8123|4242|s3cret")); err == nil {
		t.Error("a dead pid should be rejected")
	}
}

func TestNotifyWithoutLockfile(t *testing.T) {
	orig := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return t.TempDir(), nil }
	t.Cleanup(func() { userConfigDirFunc = orig })

	if err := New().Notify("hello"); err == nil {
		t.Error("Notify should fail when the tray app is not running")
	}
}
