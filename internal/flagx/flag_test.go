package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://bank:8080", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://bank:8080"},
		},
		{
			name:    "equals form",
			args:    []string{"-t=5", "-a", "http://bank"},
			allowed: []string{"-t"},
			want:    []string{"-t=5"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "dash token is not consumed as value",
			args:    []string{"-c", "-config=alt.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "-config=alt.json"},
		},
		{
			name:    "value containing equals after separate flag",
			args:    []string{"-a", "http://bank/?x=1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://bank/?x=1"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-l", "debug", "-l", "warn"},
			allowed: []string{"-l"},
			want:    []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"bankclient", "-c", "/etc/bank.json"}
		assert.Equal(t, "/etc/bank.json", JsonConfigFlags())
	})

	t.Run("long with other flags around", func(t *testing.T) {
		os.Args = []string{"bankclient", "-a", "http://x", "-config", "bank.json", "-t", "3"}
		assert.Equal(t, "bank.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"bankclient", "-a", "http://x"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"bankclient", "-c", "1.json", "-config", "2.json"}
		assert.Equal(t, "2.json", JsonConfigFlags())
	})
}
