package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alacartapr/catalog-api/internal/model"
)

func uint8Ptr(n uint8) *uint8 { return &n }

func TestPriceLabel(t *testing.T) {
	cases := []struct {
		name  string
		level *uint8
		want  string
	}{
		{"missing tier", nil, ""},
		{"tier 1", uint8Ptr(1), "$"},
		{"tier 4", uint8Ptr(4), "$$$$"},
		{"below range clamps up", uint8Ptr(0), "$"},
		{"above range clamps down", uint8Ptr(9), "$$$$"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, priceLabel(tc.level))
		})
	}
}

func TestToLocationPartPassesFieldsThrough(t *testing.T) {
	addr := "Calle Loíza 123"
	mun := "San Juan"
	lat, lng := 18.45, -66.06
	got := toLocationPart(model.Location{
		ID:        7,
		Address:   &addr,
		Municipio: &mun,
		Lat:       &lat,
		Lng:       &lng,
		IsPrimary: true,
	})
	assert.Equal(t, &addr, got.Address)
	assert.Equal(t, &mun, got.Municipio)
	assert.Nil(t, got.Zone)
	assert.Equal(t, &lat, got.Lat)
	assert.Equal(t, &lng, got.Lng)
}
