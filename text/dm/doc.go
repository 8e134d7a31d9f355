// This file documents the scope of table.go.
//
// Unlike text/uchar's NFC/NFKC/NFD/NFKD (delegated wholesale to
// golang.org/x/text/unicode/norm), this package's table only needs to
// cover the formatting tags that text/fold actually filters against:
// NoBreak, Small, a sample of the Arabic presentation-form blocks,
// Super/Sub/Fraction digits, a handful of alternative Greek letterforms,
// and one representative Mathematical Alphanumeric Symbol. Hangul
// syllables are handled algorithmically in dm.go rather than by table,
// per spec.md's decomposition formulas. Building and maintaining a
// byte-for-byte mirror of UnicodeData.txt's decomposition column is the
// "general Unicode database" spec.md's non-goals disclaim.
package dm
