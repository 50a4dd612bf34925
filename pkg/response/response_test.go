package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	result := New(map[string]int{"total": 0}, http.StatusOK)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "application/json", result.Headers["content-type"])
	assert.JSONEq(t, `{"total":0}`, result.Body)
}

func TestMessage(t *testing.T) {
	result := Message("Customer 'tony@stark.com' created.", http.StatusCreated)

	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.JSONEq(t, `{"message":"Customer 'tony@stark.com' created."}`, result.Body)
}

func TestError(t *testing.T) {
	result := Error("Email and name are required.", http.StatusConflict)

	assert.Equal(t, http.StatusConflict, result.StatusCode)
	assert.JSONEq(t, `{"error":"Email and name are required."}`, result.Body)
}

func TestNew_UnencodableBody(t *testing.T) {
	result := New(make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, result.Body)
}
