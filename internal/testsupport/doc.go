// Package testsupport holds helpers shared by package and CLI tests: isolated
// HOME directories, generated configuration files, and input fixtures.
package testsupport
