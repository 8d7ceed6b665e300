package browser

import (
	"errors"
	"reflect"
	"runtime"
	"testing"
)

func TestBuildURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		name    string
		path    string
		wantURI string
		wantErr bool
	}{
		{
			name:    "simple file path",
			path:    "/home/test/gallery-output/index.html",
			wantURI: "file:///home/test/gallery-output/index.html",
		},
		{
			name:    "path with spaces",
			path:    "/Users/test/My Gallery/index.html",
			wantURI: "file:///Users/test/My%20Gallery/index.html",
		},
		{
			name:    "path with umlaut",
			path:    "/Users/test/Bücher/index.html",
			wantURI: "file:///Users/test/B%C3%BCcher/index.html",
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURI(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantURI {
				t.Errorf("BuildURI(%q) = %q, want %q", tt.path, got, tt.wantURI)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantName: "open", wantArgs: []string{"file:///x"}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{"file:///x"}},
		{goos: "windows", wantName: "cmd", wantArgs: []string{"/c", "start", "", "file:///x"}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := Command(tt.goos, "file:///x")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Command(%q) = %s %v, want %s %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestOpener_OpenFile(t *testing.T) {
	if _, _, err := Command(runtime.GOOS, ""); err != nil {
		t.Skip("unsupported platform")
	}

	var gotName string
	var gotArgs []string
	o := &Opener{run: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}

	if err := o.OpenFile("/tmp/out/index.html"); err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if gotName == "" || len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] == "" {
		t.Errorf("command not invoked: %s %v", gotName, gotArgs)
	}

	o.run = func(string, ...string) error { return errors.New("no browser") }
	if err := o.OpenFile("/tmp/out/index.html"); err == nil {
		t.Error("expected error from failing command")
	}
}
