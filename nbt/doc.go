// Package nbt reads the Named Binary Tag format, the recursive tagged
// big-endian binary tree format used by the Minecraft game engine, and
// produces an in-memory tree of typed values.
//
// The entry points are Parse, ParseExplicit, ParseAuto, ParseBytes and
// ParseFile. The result of a successful parse is a Node, which callers
// navigate with the As* accessors and the list/compound views.
package nbt
