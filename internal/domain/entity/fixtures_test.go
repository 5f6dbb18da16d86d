package entity

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const validCPF = "111.444.777-35"

// generateCPF returns a random unformatted CPF with correct check digits.
func generateCPF() string {
	for {
		base := fmt.Sprintf("%09d", rand.IntN(1_000_000_000))
		first := cpfVerifierDigit(base)
		second := cpfVerifierDigit(base + string(first))
		cpf := base + string(first) + string(second)
		if _, blacklisted := cpfBlacklist[cpf]; !blacklisted {
			return cpf
		}
	}
}

func makeGeo(t *testing.T) Geo {
	t.Helper()

	geo, err := NewGeo(-23.5505, -46.6333)
	require.NoError(t, err)

	return geo
}

func makeAddress(t *testing.T) *Address {
	t.Helper()

	address, err := NewAddress("Av. Paulista, 1578 - Bela Vista, São Paulo", makeGeo(t))
	require.NoError(t, err)

	return address
}

func makeClientParams(t *testing.T) ClientParams {
	t.Helper()

	return ClientParams{
		Name:      "Maria Silva",
		Contact:   "11987654321",
		Birthdate: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Cpf:       generateCPF(),
		Addresses: []*Address{makeAddress(t)},
	}
}
