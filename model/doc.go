// Package model provides the data structures shared by the statement
// processing pipeline.
//
// This package defines the types every other package operates on: column
// roles, the role-to-column map, insertion-ordered document metadata, and
// the normalized transaction table.
//
// # Roles and column maps
//
// A [Role] names the semantic meaning of a statement column (date,
// narration, debit, ...). A [ColumnMap] records which column index carries
// each role; at most one index is ever recorded per role, and the first
// recording wins:
//
//	cm := model.ColumnMap{}
//	cm.Record(model.RoleDate, 0)
//	cm.Record(model.RoleDate, 3) // ignored
//
// # Tables
//
// A [Table] is an ordered list of rows aligned to a normalized header list.
// Role-sensitive access goes through the column map rather than raw column
// indices:
//
//	val, ok := table.Cell(0, model.RoleNarration)
//
// # Metadata
//
// [Metadata] is an ordered key/value association. Chunk serialization is
// order-sensitive, so insertion order is preserved and survives JSON
// marshaling.
package model
