package app

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "driftwatch" {
		t.Errorf("expected Use to be 'driftwatch', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()

	expectedCommands := []string{"init", "check", "history"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Use] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected command '%s' to be registered", expected)
		}
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "directory", "database"} {
		flag := RootCmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Errorf("expected --%s flag to be registered", name)
			continue
		}
		if flag.Usage == "" {
			t.Errorf("expected --%s flag to have usage text", name)
		}
	}
}

func TestRootCommandFlagShorthands(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"config", "c"},
		{"directory", "d"},
		{"database", "b"},
	}

	for _, tt := range tests {
		flag := RootCmd.PersistentFlags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("flag --%s not registered", tt.name)
			continue
		}
		if flag.Shorthand != tt.shorthand {
			t.Errorf("flag --%s shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
		}
	}
}
