package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCropFilter_Empty(t *testing.T) {
	f, err := CompileCropFilter("")

	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, "", f.String())

	got, err := f.Apply(testCrops())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCompileCropFilter_Invalid(t *testing.T) {
	tests := []string{
		"sale_price >",
		"unknown_field > 1",
		`name + 1`,
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := CompileCropFilter(src)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestCompileCropFilter_TooComplex(t *testing.T) {
	src := "cost > 0" + strings.Repeat(" && cost > 0", maxFilterNodes)

	_, err := CompileCropFilter(src)

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestCompileCropFilter_WithinNodeLimit(t *testing.T) {
	src := "cost > 0" + strings.Repeat(" && cost > 0", 10)

	f, err := CompileCropFilter(src)

	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestCropFilter_Apply(t *testing.T) {
	crops := []Crop{
		{Name: "Lettuce", Cost: 15, Time: 10, SalePrice: 30},
		{Name: "Leek", Cost: 1250, Time: 45, SalePrice: 1380},
		{Name: "Carrot", Cost: 3, Time: 4, SalePrice: 20},
	}

	tests := []struct {
		expr string
		want []string
	}{
		{"sale_price > 100", []string{"Leek"}},
		{"time <= 10", []string{"Lettuce", "Carrot"}},
		{`name startsWith "L"`, []string{"Lettuce", "Leek"}},
		{"cost < 10 || time > 40", []string{"Leek", "Carrot"}},
		{"false", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := CompileCropFilter(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, f.String())

			got, err := f.Apply(crops)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	// Input slice is untouched.
	assert.Equal(t, "Lettuce", crops[0].Name)
	assert.Len(t, crops, 3)
}
