package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kursus Mengemudi Mobil Manual", "kursus-mengemudi-mobil-manual"},
		{"  SIM A - Paket Lengkap!  ", "sim-a-paket-lengkap"},
		{"Motor (SIM C) 2026", "motor-sim-c-2026"},
		{"---", "item"},
		{"", "item"},
		{"multiple   spaces", "multiple-spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}
