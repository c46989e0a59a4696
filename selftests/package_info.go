// Package selftests registers the framework's own tests with the default context. Importing it
// for its side effects, as the root test program does, makes them available to the runner.
package selftests
