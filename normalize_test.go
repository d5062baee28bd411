package sintaxis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"COMÍA", "COMIA"},
		{"comía", "COMIA"},
		{"Comía", "COMIA"},
		{"niño", "NINO"},
		{"NIÑO", "NINO"},
		{"árbol", "ARBOL"},
		{"ÉL", "EL"},
		{"camión", "CAMION"},
		{"menú", "MENU"},
		{"pingüino", "PINGÜINO"},
		{"me levanto", "ME LEVANTO"},
		{"42", "42"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, w := range []string{"COMÍA", "comía", "Ñandú", "corréis", "levantáis", "ESPAÑA", ""} {
		once := Normalize(w)
		assert.Equal(t, once, Normalize(once), "Normalize(Normalize(%q))", w)
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("COMÍA"), Normalize("comía"))
	assert.Equal(t, Normalize("España"), Normalize("ESPAÑA"))
}
