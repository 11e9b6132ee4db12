// Package tabular reads bank statements delivered as CSV or Excel files.
//
// Statement exports are rarely clean CSV: metadata lines precede the header,
// narrations contain unquoted commas and some banks ship a spreadsheet with
// the same mixed layout. ParseMixedFile handles the line-oriented mixed
// format directly, while ReadFallback loads the file through a real CSV or
// spreadsheet reader and peels metadata off the leading rows.
package tabular
