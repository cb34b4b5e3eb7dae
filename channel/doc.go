// Package channel identifies pixel channels and groups of channels that are
// conventionally stored interleaved in memory.
//
// # Channels
//
// A [Channel] is a small integer id. The built-in ids cover the usual image
// planes (red, green, blue, alpha, depth, mask and the U/V chroma planes);
// further ids are handed out at runtime by name through a [Registry].
//
// # Sets
//
// A [Set] is a bitmask of channels. Iteration is always in ascending id
// order, and every set operation is a plain bitmask operation, so set values
// can be copied and compared freely.
//
// # Brother groups
//
// A [Group] names a fixed interleaving such as RGB or BGRA. Its [GroupInfo]
// records which channels belong to it and at which memory slot each member
// lives relative to the group's base address.
//
// # Concurrency
//
// The group table is immutable once a Registry is built. The name table is
// guarded by a mutex, so [Registry.Lookup] may be called from any goroutine.
package channel
