package datasource

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty output", "", ""},
		{"kubectl client", "Client Version: v1.29.2\nKustomize Version: v5.0.4", "1.29.2"},
		{"helm short", "v3.14.0+g3fc9f4b", "3.14.0+g3fc9f4b"},
		{"docker", "Docker version 25.0.3, build 4debf41", "25.0.3"},
		{"no leading v", "tool 2.1.0", "2.1.0"},
		{"prerelease", "v1.30.0-rc.1", "1.30.0-rc.1"},
		{"no version token", "command not found", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseVersion(tt.input); got != tt.expected {
				t.Errorf("parseVersion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
