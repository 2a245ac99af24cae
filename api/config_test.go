package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if diff := cmp.Diff([]string{"breathe-hr"}, cfg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	entry, ok := cfg.Server(DefaultServerName)
	if !ok {
		t.Fatalf("Server(%q) not found", DefaultServerName)
	}
	if entry.Command != "python" {
		t.Errorf("Command = %q, want %q", entry.Command, "python")
	}
	if diff := cmp.Diff([]string{"-m", "breathe_hr_mcp"}, entry.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	wantEnv := []EnvVar{{Key: "BREATHE_HR_API_KEY", Value: "your_breathe_hr_api_key_here"}}
	if diff := cmp.Diff(wantEnv, entry.EnvVars()); diff != "" {
		t.Errorf("EnvVars() mismatch (-want +got):\n%s", diff)
	}
	if !cfg.HasPlaceholder() {
		t.Error("HasPlaceholder() = false, want true")
	}
}

func TestDefaultConfigIsFresh(t *testing.T) {
	first := DefaultConfig()
	entry, _ := first.Server(DefaultServerName)
	entry.Args[0] = "changed"
	entry.Env.Set(APIKeyEnv, "secret")

	second, _ := DefaultConfig().Server(DefaultServerName)
	if second.Args[0] != "-m" {
		t.Errorf("Args[0] = %q after mutating another copy, want %q", second.Args[0], "-m")
	}
	if v, _ := second.Env.Get(APIKeyEnv); v != APIKeyPlaceholder {
		t.Errorf("env value = %q after mutating another copy, want placeholder", v)
	}
}

func TestOverridesApply(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		wantName  string
		wantCmd   string
		wantArgs  []string
		wantEnv   []EnvVar
	}{
		{
			name:      "No overrides",
			overrides: Overrides{},
			wantName:  "breathe-hr",
			wantCmd:   "python",
			wantArgs:  []string{"-m", "breathe_hr_mcp"},
			wantEnv:   []EnvVar{{Key: APIKeyEnv, Value: APIKeyPlaceholder}},
		},
		{
			name: "Command and args",
			overrides: Overrides{
				Command: "uvx",
				Args:    []string{"breathe-hr-mcp"},
			},
			wantName: "breathe-hr",
			wantCmd:  "uvx",
			wantArgs: []string{"breathe-hr-mcp"},
			wantEnv:  []EnvVar{{Key: APIKeyEnv, Value: APIKeyPlaceholder}},
		},
		{
			name:      "Empty args clear the defaults",
			overrides: Overrides{Args: []string{}},
			wantName:  "breathe-hr",
			wantCmd:   "python",
			wantArgs:  []string{},
			wantEnv:   []EnvVar{{Key: APIKeyEnv, Value: APIKeyPlaceholder}},
		},
		{
			name: "Env keeps order",
			overrides: Overrides{
				Name: "hr",
				Env: []EnvVar{
					{Key: "BREATHE_HR_BASE_URL", Value: "https://api.sandbox.breathehr.info/v1"},
					{Key: APIKeyEnv, Value: "abc"},
				},
			},
			wantName: "hr",
			wantCmd:  "python",
			wantArgs: []string{"-m", "breathe_hr_mcp"},
			wantEnv: []EnvVar{
				{Key: "BREATHE_HR_BASE_URL", Value: "https://api.sandbox.breathehr.info/v1"},
				{Key: APIKeyEnv, Value: "abc"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.overrides.Apply()
			if diff := cmp.Diff([]string{tt.wantName}, cfg.Names()); diff != "" {
				t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
			}
			entry, _ := cfg.Server(tt.wantName)
			if entry.Command != tt.wantCmd {
				t.Errorf("Command = %q, want %q", entry.Command, tt.wantCmd)
			}
			if diff := cmp.Diff(tt.wantArgs, entry.Args); diff != "" {
				t.Errorf("Args mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantEnv, entry.EnvVars()); diff != "" {
				t.Errorf("EnvVars() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHasPlaceholder(t *testing.T) {
	cfg := Overrides{Env: []EnvVar{{Key: APIKeyEnv, Value: "real-key"}}}.Apply()
	if cfg.HasPlaceholder() {
		t.Error("HasPlaceholder() = true for a real key, want false")
	}
	if (&ServerConfig{}).HasPlaceholder() {
		t.Error("HasPlaceholder() = true for an empty config, want false")
	}
}

func TestParseEnvVar(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EnvVar
		wantErr bool
	}{
		{name: "Simple", input: "KEY=value", want: EnvVar{Key: "KEY", Value: "value"}},
		{name: "Empty value", input: "KEY=", want: EnvVar{Key: "KEY", Value: ""}},
		{name: "Value with equals", input: "URL=a=b", want: EnvVar{Key: "URL", Value: "a=b"}},
		{name: "Missing equals", input: "KEY", wantErr: true},
		{name: "Empty key", input: "=value", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvVar(tt.input)
			if tt.wantErr {
				if !failure.Is(err, ErrInvalidEnvVar) {
					t.Fatalf("ParseEnvVar(%q) error = %v, want %s", tt.input, err, ErrInvalidEnvVar)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnvVar(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseEnvVar(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
