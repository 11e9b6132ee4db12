// Package rag turns a normalized statement table into text chunks suitable
// for embedding in RAG (Retrieval-Augmented Generation) pipelines.
//
// Two chunk shapes are produced. Structured chunks carry a fixed-width window
// of transaction rows in an indented key/value layout that embeds well and
// remains parseable downstream. Fallback chunks are plain text, used when the
// source could not be normalized into a table.
//
// The first chunk of a structured sequence holds only the statement metadata.
// Every following chunk repeats the metadata so each chunk is self-contained.
package rag
