// Package shared provides common utilities and test helpers used across
// the deal sheet generator. It is a home for functionality that does not
// belong to any specific domain package.
//
// # Structure
//
// - testutil: testing utilities shared by multiple packages, currently
// a capturing slog handler for asserting on log output and an xlsx
// fixture builder for seller data files.
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helpers with no domain-specific logic
//
// It should NOT contain business logic or dependencies on other internal
// packages; everything here must stay importable from any package's tests
// without creating cycles.
package shared
