package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestClientAddressModel_CoordinatesAreNotRounded(t *testing.T) {
	s, err := schema.Parse(&ClientAddressModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Latitude", "Longitude"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, schema.DataType("double precision"), field.DataType, name)
	}
}
