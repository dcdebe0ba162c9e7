// Package internalcheck holds static-analysis tests that enforce source
// policies on the other cb-rsa-go packages.
//
// # Internal Use Only
//
// The package has no exported API. Its tests load the packages under check
// with golang.org/x/tools/go/packages and fail on any violation:
//
//   - the montgomery package must not call a library power-mod or import
//     math/big directly;
//   - the rsa package and the key conversion helpers must not format values
//     with %x or %X, which is how secrets usually end up in logs.
package internalcheck
