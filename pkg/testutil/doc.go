// Package testutil provides utilities for testing fsimage components.
//
// Key components:
//   - TestEnvironment: an image root, config dir and data dir on an afero
//     filesystem, with cleanup handled by the testing package
//   - FileTree: declarative directory trees written into the environment
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when the code under test reads the real filesystem,
//     such as config loading through koanf
//   - All test data should be defined inline, not in external files
package testutil
