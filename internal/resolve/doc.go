// Package resolve turns an environment descriptor into a concrete
// per-platform environment record against one catalog snapshot.
//
// Resolution is a pure function of (descriptor, platform, snapshot):
// overlays are folded onto the snapshot in declared order, plain tools are
// looked up in declaration order, toolchain selectors each pick exactly one
// variant, and the startup action is attached unchanged. Resolving the same
// inputs twice yields identical records, and resolutions for different
// platforms share no mutable state.
package resolve
