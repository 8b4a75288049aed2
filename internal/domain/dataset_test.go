package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_Float(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   float64
		wantOK bool
	}{
		{name: "Texto numérico", value: " 12.5 ", want: 12.5, wantOK: true},
		{name: "Número", value: 3.0, want: 3, wantOK: true},
		{name: "Inteiro", value: 7, want: 7, wantOK: true},
		{name: "Texto não numérico", value: "abc"},
		{name: "Texto NaN", value: "NaN"},
		{name: "Texto infinito", value: "inf"},
		{name: "Texto infinito negativo", value: "-Infinity"},
		{name: "Número NaN", value: math.NaN()},
		{name: "Número infinito", value: math.Inf(1)},
		{name: "Vazio", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Row{"valor": tt.value}.Float("valor")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
