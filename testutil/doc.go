// Package testutil provides shared test helpers: bounded test contexts,
// configuration fixtures (testutil/fixtures), and a scripted mock engine
// (testutil/mocks).
package testutil
