// Package helpers is the root of a small collection of stateless formatting and
// validation helpers. The root package holds no code; import the subpackages:
//
//   - pkg/datefmt  – long US English calendar dates ("January 5, 2024")
//   - pkg/validate – shallow email address plausibility check
//
// Both packages depend only on the standard library, keep no state and are
// safe for concurrent use.
package helpers
