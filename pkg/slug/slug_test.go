package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malarguetech/taller-api/pkg/slug"
)

func TestFoldAccents(t *testing.T) {
	cases := map[string]string{
		"Pérez":            "Perez",
		"Malargüe":         "Malargue",
		"Gómez Ñandú":      "Gomez Nandu",
		"sin tildes":       "sin tildes",
		"ÁÉÍÓÚ áéíóú":      "AEIOU aeiou",
		"":                 "",
		"reparación rápida": "reparacion rapida",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.FoldAccents(in), "entrada: %q", in)
	}
}

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Carlos Giménez":       "carlos_gimenez",
		"María José  Pérez":    "maria_jose_perez",
		"Malargüe S.R.L.":      "malargue_s_r_l",
		"  con espacios  ":     "con_espacios",
		"ya_es_slug":           "ya_es_slug",
		"Orden #42 (urgente)":  "orden_42_urgente",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada: %q", in)
	}
}
