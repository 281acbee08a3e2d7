package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"products", "sales"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["products","sales"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["users"]`)))
	assert.Equal(t, StringList{"users"}, l)

	require.NoError(t, l.Scan(`["a","b"]`))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)

	assert.Error(t, l.Scan(42))
}

func TestDeletionPoliciesCoverEveryResource(t *testing.T) {
	soft := []string{"branches", "users", "members", "category_products", "products",
		"suppliers", "sales", "purchases", "shifts", "promos"}
	for _, r := range soft {
		assert.Equal(t, DeletionSoft, DeletionPolicies[r], r)
	}
	hard := []string{"stock_mutations", "return_of_goods", "loyalty_points", "user_access_rights"}
	for _, r := range hard {
		assert.Equal(t, DeletionHard, DeletionPolicies[r], r)
	}
}
