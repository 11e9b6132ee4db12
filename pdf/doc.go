// Package pdf extracts bank statement content from PDF files and assembles
// per-page table grids into a single normalized transaction table.
//
// Extraction is delegated to the tabula library through the [Source]
// interface, so assembly logic can be tested against literal page content.
// Text found outside table regions is kept as per-page metadata lines, and a
// raw-text fallback is available for statements where no table survives
// extraction.
package pdf
