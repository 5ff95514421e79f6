package pip

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pipdeck/pipdeck/internal/model"
)

// scriptedRunner returns canned output keyed by the joined argument
// list, recording every invocation.
type scriptedRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (r *scriptedRunner) Run(_ context.Context, _ bool, args ...string) (string, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if err, ok := r.errs[key]; ok {
		return "", err
	}
	return strings.TrimSpace(r.outputs[key]), nil
}

func TestClientList(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"list --format=json": `[{"name":"alpha","version":"1.0"}]`,
	}}
	c := &Client{runner: runner}

	pkgs, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pkgs) != 1 || pkgs[0].Name != "alpha" || pkgs[0].Version != "1.0" {
		t.Fatalf("unexpected packages: %+v", pkgs)
	}
}

func TestClientOutdatedArgs(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"list --outdated --format=json": `[]`,
	}}
	c := &Client{runner: runner}

	if _, err := c.Outdated(context.Background()); err != nil {
		t.Fatalf("Outdated: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "list --outdated --format=json" {
		t.Errorf("unexpected calls: %v", runner.calls)
	}
}

func TestClientDetailResolvesSize(t *testing.T) {
	loc := t.TempDir()
	dir := filepath.Join(loc, "alpha")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mod.py"), make([]byte, 123), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &scriptedRunner{outputs: map[string]string{
		"show alpha": "Version: 1.0\nRequires: beta\nLocation: " + loc,
	}}
	c := &Client{runner: runner}

	d, err := c.Detail(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.Version != "1.0" {
		t.Errorf("Version = %q", d.Version)
	}
	if d.SizeBytes != 123 {
		t.Errorf("SizeBytes = %d, want 123", d.SizeBytes)
	}
	if len(d.Dependencies) != 1 || d.Dependencies[0] != "beta" {
		t.Errorf("Dependencies = %v", d.Dependencies)
	}
}

func TestClientDetailUnknownSizeOnMissingDir(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"show ghost": "Version: 0.1\nLocation: /definitely/not/here",
	}}
	c := &Client{runner: runner}

	d, err := c.Detail(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.SizeBytes != model.SizeUnknown {
		t.Errorf("SizeBytes = %d, want SizeUnknown", d.SizeBytes)
	}
}

func TestClientUninstallArgs(t *testing.T) {
	runner := &scriptedRunner{}
	c := &Client{runner: runner}

	if err := c.Uninstall(context.Background(), "alpha"); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "uninstall alpha -y" {
		t.Errorf("unexpected calls: %v", runner.calls)
	}
}

func TestClientUpgradeBulk(t *testing.T) {
	runner := &scriptedRunner{}
	c := &Client{runner: runner}

	if err := c.Upgrade(context.Background(), "alpha", "beta"); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "install --upgrade alpha beta" {
		t.Errorf("expected one bulk invocation, got: %v", runner.calls)
	}
}

func TestClientInstallPropagatesCommandError(t *testing.T) {
	wantErr := &CommandError{Kind: ErrNonZeroExit, Stderr: "no matching distribution"}
	runner := &scriptedRunner{errs: map[string]error{
		"install nope": wantErr,
	}}
	c := &Client{runner: runner}

	err := c.Install(context.Background(), "nope")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Kind != ErrNonZeroExit {
		t.Fatalf("expected CommandError{NonZeroExit}, got %v", err)
	}
}
