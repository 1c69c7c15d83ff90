package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestNodeDependencies checks that every graft node below internal declares exactly the
// dependencies it resolves with graft.Dep.
func TestNodeDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}
