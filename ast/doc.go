// Package ast defines the node contracts a markdown grammar parser builds
// from scanner positions.
//
// Every node carries the NodePosition it was constructed with and never
// changes it. Container nodes keep their children in insertion order and
// expose them both through the general Children or Inlines view and, where
// the child type is fixed, through the typed Items view of the same slice.
//
// This package holds data only. It does not parse or render.
package ast
