package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "forward",
			args: []string{"--a", "40", "--n", "2", "--distance", "10"},
			want: "rssi(10) = 20.0000\n",
		},
		{
			name: "inverse",
			args: []string{"--a", "40", "--n", "2", "--rssi", "20"},
			want: "distance(20) = 10.0000\n",
		},
		{
			name: "fitted magnitudes",
			args: []string{"--a", "44.8279", "--n", "-2.2544", "--distance", "1"},
			want: "rssi(1) = 44.8279\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, append([]string{"predict"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestPredict_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither target", []string{"--a", "40", "--n", "2"}},
		{"both targets", []string{"--a", "40", "--n", "2", "--distance", "1", "--rssi", "20"}},
		{"zero distance", []string{"--a", "40", "--n", "2", "--distance", "0"}},
		{"negative distance", []string{"--a", "40", "--n", "2", "--distance", "-3"}},
		{"zero exponent", []string{"--a", "40", "--n", "0", "--rssi", "20"}},
		{"positional argument", []string{"--a", "40", "--n", "2", "--rssi", "20", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"predict"}, tt.args...)...)
			require.Error(t, err)
		})
	}
}
