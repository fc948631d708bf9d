// Package extract pulls the last-updated timestamp out of `brew config` text.
//
// Extraction is two regex searches: the first finds the label line in
// multi-line mode, the second finds the date inside that line. Both return
// the first match only.
package extract
