package promo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-backend/internal/models"
)

func TestValidPromoValue(t *testing.T) {
	cases := []struct {
		name  string
		typ   models.PromoType
		value string
		want  bool
	}{
		{"percentage in range", models.PromoPercentage, "15", true},
		{"percentage at cap", models.PromoPercentage, "100", true},
		{"percentage over cap", models.PromoPercentage, "100.01", false},
		{"percentage negative", models.PromoPercentage, "-1", false},
		{"amount", models.PromoAmount, "5000", true},
		{"amount zero", models.PromoAmount, "0", true},
		{"amount negative", models.PromoAmount, "-5000", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := decimal.RequireFromString(tc.value)
			assert.Equal(t, tc.want, validPromoValue(tc.typ, v))
		})
	}
}
