package app

import "testing"

func TestHistoryCommand(t *testing.T) {
	if historyCmd.Use != "history" {
		t.Errorf("expected Use to be 'history', got '%s'", historyCmd.Use)
	}
	if historyCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if historyCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestHistoryCommandFlags(t *testing.T) {
	tests := []struct {
		flagName string
		defValue string
	}{
		{"limit", "10"},
		{"history-db", ""},
		{"events", "0"},
	}

	for _, tt := range tests {
		flag := historyCmd.Flags().Lookup(tt.flagName)
		if flag == nil {
			t.Errorf("expected flag '%s' to be registered", tt.flagName)
			continue
		}
		if flag.DefValue != tt.defValue {
			t.Errorf("flag '%s' default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
		}
	}
}
