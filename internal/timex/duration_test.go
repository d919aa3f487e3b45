package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Interval Duration `json:"interval" yaml:"interval"`
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `{"interval":"3s"}`, want: 3 * time.Second},
		{name: "compound string", input: `{"interval":"1m30s"}`, want: 90 * time.Second},
		{name: "nanoseconds", input: `{"interval":1500000000}`, want: 1500 * time.Millisecond},
		{name: "bad string", input: `{"interval":"soon"}`, wantErr: true},
		{name: "bad type", input: `{"interval":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			err := json.Unmarshal([]byte(tt.input), &h)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Interval.Duration)
		})
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("interval: 250ms\n"), &h))
	assert.Equal(t, 250*time.Millisecond, h.Interval.Duration)

	require.NoError(t, yaml.Unmarshal([]byte("interval: 2000000000\n"), &h))
	assert.Equal(t, 2*time.Second, h.Interval.Duration)

	require.Error(t, yaml.Unmarshal([]byte("interval: later\n"), &h))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(holder{Interval: Duration{5 * time.Second}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"interval":"5s"}`, string(b))
}
