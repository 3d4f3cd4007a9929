// Package testutil provides fixtures for testing simenv components.
//
// Key components:
//   - Isolate: points config, state and SIMENV_* lookups at temp dirs
//   - SimHome: declarative builder for a fake home with simulator checkouts
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
