package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWholeAmount(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
		ok   bool
	}{
		{"whole number", float64(20), 20, true},
		{"zero", float64(0), 0, true},
		{"negative whole", float64(-5), -5, true},
		{"fractional", 2.5, 0, false},
		{"string", "20", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := wholeAmount(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
