// Package ciutil detects whether the process runs under a CI provider and
// collects the run metadata (commit, branch, run ID) that the provider
// exposes through environment variables.
package ciutil
