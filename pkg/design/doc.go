// Package design defines the bench model: panels, assemblies (one per design
// concept) and the catalog that holds them. Assemblies are built once from
// design sources and never mutated; Explode produces derived copies.
package design
