// Package columns recognizes statement header rows and maps raw bank-specific
// column headers onto canonical column roles.
//
// Classification is keyword-substring based: each role carries an ordered
// keyword list, and the first role whose list matches wins. The priority
// order is part of the contract: downstream schema decisions depend on
// first-match, declaration-order semantics.
package columns
