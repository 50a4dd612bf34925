package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	customer := Customer{
		Name:     "Tony Stark",
		Username: "TONYSTARK",
		Email:    "TONY@STARK.com",
	}

	customer.Normalize()

	assert.Equal(t, "tonystark", customer.Username)
	assert.Equal(t, "tony@stark.com", customer.Email)
	// display name keeps its casing
	assert.Equal(t, "Tony Stark", customer.Name)
}

func TestIsDisabled(t *testing.T) {
	assert.True(t, Customer{}.IsDisabled())
	assert.False(t, Customer{Enabled: true}.IsDisabled())
}
