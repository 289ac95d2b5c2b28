package dotnet

import (
	"reflect"
	"testing"
)

func TestRenameKeys(t *testing.T) {
	km := KeyMap{
		{"configuration", "--configuration"},
		{"noRestore", "--no-restore"},
	}
	opts := Options{
		"configuration": "Release",
		"noRestore":     true,
		"custom":        "kept",
	}

	got := RenameKeys(opts, km)

	want := Options{
		"--configuration": "Release",
		"--no-restore":    true,
		"custom":          "kept",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RenameKeys() = %v, want %v", got, want)
	}
	// Input must not be mutated.
	if _, ok := opts["configuration"]; !ok {
		t.Fatal("RenameKeys() mutated its input")
	}
}

func TestFlatten_OrderFollowsKeyMap(t *testing.T) {
	km := KeyMap{
		{"first", "--first"},
		{"second", "--second"},
		{"third", "--third"},
	}
	opts := Options{
		"third":  "3",
		"first":  "1",
		"second": "2",
	}

	got := Flatten(opts, km)
	want := []string{"--first", "1", "--second", "2", "--third", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_ValueKinds(t *testing.T) {
	km := KeyMap{
		{"flag", "--flag"},
		{"off", "--off"},
		{"value", "--value"},
		{"count", "--count"},
		{"missing", "--missing"},
	}
	opts := Options{
		"flag":  true,
		"off":   false,
		"value": "x",
		"count": 3,
		"nilly": nil,
	}

	got := Flatten(opts, km)
	want := []string{"--flag", "--value", "x", "--count", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_PassThroughKeysSorted(t *testing.T) {
	opts := Options{
		"zeta":      true,
		"alpha":     "1",
		"--already": true,
	}

	got := Flatten(opts, nil)
	want := []string{"--already", "--alpha", "1", "--zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten() = %v, want %v", got, want)
	}
}
