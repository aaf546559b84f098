// Package internalcheck holds source-tree policy tests for the rsaprim
// library packages: no direct equality on byte slices, no hex formatting of
// potentially secret values, and no math/rand anywhere near key material.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications. It contains no runtime code, only tests.
package internalcheck
