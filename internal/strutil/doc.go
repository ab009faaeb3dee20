// Package strutil collects the independent utility transforms that sit
// outside the codec and metrics cores: case-style renaming, character
// removal filters, output escaping, case games, and shuffling.
//
// All functions are pure; Shuffle takes its random source as an explicit
// argument so callers control determinism.
package strutil
