// Package types defines the value types shared between the AST and the
// IR: the closed set of result types a QuakeC-family expression can carry,
// and the typed-error convention used across the compiler core.
package types
