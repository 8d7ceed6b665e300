package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"booq/internal/application/commands"
	"booq/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BOOQ_ORDER_PREFIX", "")
	os.Unsetenv("BOOQ_ORDER_PREFIX")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := runCLI(t, "classify", "BN00561.jpg", "bn00561_2.JPG", "cover.png", "IMG_2.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"BN00561.jpg\tmanaged\tBN00561",
		"bn00561_2.JPG\tduplicate",
		"cover.png\tforeign",
		"IMG_2.jpg\tforeign",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "booq.yaml")

	out, err := runCLI(t, "init", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("output = %q, expected it to name %s", out, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("starter config not written: %v", err)
	}

	if _, err := runCLI(t, "init", target); err == nil {
		t.Error("second init should refuse to overwrite")
	}
}

func TestPrintPlan(t *testing.T) {
	root := filepath.FromSlash("/gallery")
	prefixes := []string{"BN"}
	var assets []domain.ImageAsset
	for _, name := range []string{"BN1.jpg", "BN1_2.jpg", "BN2.jpg", "cover.png"} {
		assets = append(assets, domain.NewImageAsset(filepath.Join(root, name), prefixes))
	}
	inv := domain.MergeInventory([]string{"BN1"}, map[domain.ItemKey]string{"BN1": "7"}, domain.ParseIdentifierFeed(nil))
	reconcile := domain.PlanReconciliation(root, assets, inv.Active())
	plan := &commands.SyncPlan{
		Source:    root,
		Inventory: inv,
		Reconcile: reconcile,
		Preview:   domain.BuildGallery(reconcile.Survivors, inv, nil, "https://example.com"),
	}

	tests := []struct {
		name    string
		all     bool
		want    []string
		notWant []string
	}{
		{
			name:    "changes only",
			want:    []string{"1 delete, 1 archive, 1 keep, 1 skip", "delete   BN1_2.jpg", "archive  BN2.jpg → " + filepath.Join("Sold", "BN2.jpg"), "Gallery: 1 items"},
			notWant: []string{"cover.png", "7,00 €"},
		},
		{
			name: "all",
			all:  true,
			want: []string{"skip     cover.png", "keep     BN1.jpg", "7,00 €"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printPlan(&buf, plan, tt.all)
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("printPlan() missing %q:\n%s", want, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("printPlan() should not contain %q:\n%s", nw, out)
				}
			}
		})
	}
}

type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Info(format string, args ...any)    { r.add(format, args...) }
func (r *recordingReporter) Success(format string, args ...any) { r.add(format, args...) }
func (r *recordingReporter) Warn(format string, args ...any)    { r.add(format, args...) }
func (r *recordingReporter) Error(format string, args ...any)   { r.add(format, args...) }

func (r *recordingReporter) add(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestReportUnchanged(t *testing.T) {
	root := filepath.FromSlash("/gallery")
	prefixes := []string{"BN"}
	var assets []domain.ImageAsset
	for _, name := range []string{"BN1.jpg", "BN1_2.jpg", "BN2.jpg", "cover.png"} {
		assets = append(assets, domain.NewImageAsset(filepath.Join(root, name), prefixes))
	}
	active := domain.NewKeySet("BN1")
	plan := &commands.SyncPlan{Reconcile: domain.PlanReconciliation(root, assets, active)}

	rep := &recordingReporter{}
	reportUnchanged(rep, plan)

	expected := []string{"skipped cover.png (no order number)", "kept BN1.jpg (BN1)"}
	if strings.Join(rep.lines, "\n") != strings.Join(expected, "\n") {
		t.Errorf("reportUnchanged() = %q, expected %q", rep.lines, expected)
	}
}
