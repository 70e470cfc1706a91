//go:build assert_enabled

package main

import "fmt"

// Assert panics when an invariant of the World is broken. Only built with the
// assert_enabled tag.
func Assert(condition bool, what string) {
	if !condition {
		panic(fmt.Sprintf("assert failed: %s", what))
	}
}
