// Package rows classifies and repairs statement table rows: deciding whether
// a row is a transaction, an overflow continuation of the previous
// transaction, or summary/footer boilerplate, reconstructing rows whose
// cells carry embedded line breaks, and resolving debit/credit collisions.
//
// All role-sensitive checks go through a [model.ColumnMap], so behavior is
// identical however the row was produced.
package rows
