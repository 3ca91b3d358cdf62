package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":             {Data: []byte("goal:\n  maxHealth: 100\n")},
		"data/levels/snowfield.yaml": {Data: []byte("name: snowfield\n")},
		"data/levels/cave.yaml":      {Data: []byte("name: cave\n")},
	}
}

func reset(t *testing.T) {
	t.Helper()
	initialized = false
	dataFS = nil
	t.Cleanup(func() {
		initialized = false
		dataFS = nil
	})
}

func TestNotInitialized(t *testing.T) {
	reset(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile("data/game.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if _, err := Glob("data/*.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain path", "data/game.yaml", "goal:\n  maxHealth: 100\n", false},
		{"dot prefix", "./data/levels/snowfield.yaml", "name: snowfield\n", false},
		{"missing file", "data/missing.yaml", "", true},
		{"wrong prefix", "assets/game.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	reset(t)
	Init(testFS())

	if !Exists("data/levels/cave.yaml") {
		t.Error("Exists(cave) = false, want true")
	}
	if Exists("data/levels/none.yaml") {
		t.Error("Exists(none) = true, want false")
	}

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() matched %d files, want 2: %v", len(matches), matches)
	}
}
