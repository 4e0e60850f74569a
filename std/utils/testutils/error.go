// Package utils holds testify helpers shared by the package tests.
package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT binds the helpers to the running test.
func SetT(t *testing.T) {
	testT = t
}

// NoErr asserts err is nil and returns v.
func NoErr[T any](v T, err error) T {
	testT.Helper()
	require.NoError(testT, err)
	return v
}

// Err asserts err is set and returns it.
func Err[T any](_ T, err error) error {
	testT.Helper()
	require.Error(testT, err)
	return err
}
