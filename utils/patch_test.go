package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdatesFromPtrDTO(t *testing.T) {
	type dto struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Customer *uint   `json:"customer"`
		Hidden   *string `json:"-"`
		NoTag    *string
	}

	name := "Asha"
	cust := uint(7)
	hidden := "x"
	in := dto{Name: &name, Customer: &cust, Hidden: &hidden}

	got := UpdatesFromPtrDTO(&in, map[string]string{"customer": "customer_id"})
	assert.Equal(t, map[string]any{
		"name":        "Asha",
		"customer_id": uint(7),
	}, got)
}

func TestUpdatesFromPtrDTOIgnoresNonStructs(t *testing.T) {
	assert.Empty(t, UpdatesFromPtrDTO(42, nil))
	assert.Empty(t, UpdatesFromPtrDTO(nil, nil))
}

func TestNormalizeDTOTrimsStrings(t *testing.T) {
	type dto struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := dto{Name: "  Asha  ", Count: 3}
	NormalizeDTO(&in)
	assert.Equal(t, "Asha", in.Name)
	assert.Equal(t, 3, in.Count)
}

func TestNormalizePtrDTOLeavesNilsAlone(t *testing.T) {
	type dto struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	name := "  Asha "
	in := dto{Name: &name}
	NormalizePtrDTO(&in)
	assert.Equal(t, "Asha", *in.Name)
	assert.Nil(t, in.Phone)
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, ParseIntDefault("5", 1))
	assert.Equal(t, 1, ParseIntDefault("abc", 1))
	assert.Equal(t, 1, ParseIntDefault("-2", 1))
}
