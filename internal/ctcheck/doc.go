// Package ctcheck holds source-level policy tests for the ffdh package: no
// variable-time comparisons or exponentiation on secret data and no hex
// formatting in error or log messages.
//
// It has no exported API and is not meant to be imported.
package ctcheck
