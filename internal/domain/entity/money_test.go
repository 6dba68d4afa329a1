package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMoneyScale(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"150", true},
		{"150.5", true},
		{"150.50", true},
		{"150.500", true},
		{"150.505", false},
		{"0.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMoneyScale(dec(tt.amount)))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "calendar date", input: "2024-03-05", want: "2024-03-05"},
		{name: "rfc3339 utc", input: "2024-03-05T18:30:00Z", want: "2024-03-05"},
		{name: "rfc3339 keeps caller offset", input: "2024-03-05T23:30:00-05:00", want: "2024-03-05"},
		{name: "garbage", input: "05/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(DateLayout))
			assert.Equal(t, time.UTC, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}
