// Package types defines the core entities of the Monster Maker model: the
// Type registry and its effectiveness graph, Species, the Dex catalog, and
// Monster records, together with the package's sentinel errors.
//
// Type nodes live in a Registry arena and are identified by TypeID. Species
// and Monsters hold TypeIDs and Species pointers as non-owning references;
// they never mutate the graph.
package types
