package fs

import iofs "io/fs"

// NewWalkerWithWalkDir creates a Walker that enumerates directories with walkDir.
func NewWalkerWithWalkDir(rules ExclusionRules, walkDir func(root string, fn iofs.WalkDirFunc) error) *Walker {
	return &Walker{rules: rules, walkDir: walkDir}
}
