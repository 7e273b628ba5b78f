package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   time.Duration
		want  time.Duration
	}{
		{name: "valid duration", value: "90s", def: time.Hour, want: 90 * time.Second},
		{name: "compound duration", value: "1h30m", def: time.Hour, want: 90 * time.Minute},
		{name: "empty falls back", value: "", def: time.Hour, want: time.Hour},
		{name: "malformed falls back", value: "soon", def: 5 * time.Minute, want: 5 * time.Minute},
		{name: "missing unit falls back", value: "30", def: time.Minute, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.value, tt.def))
		})
	}
}
