// This file documents the scope of the combining-class table in ccc.go.
//
// The table covers the combining marks that actually appear in ordinary
// Latin/Greek/Cyrillic/Hebrew/Arabic/Thai/Adlam text and in the output of
// NFD/NFKD decomposition of common precomposed characters. It is not a
// full mirror of the UCD's DerivedCombiningClass.txt — building and
// maintaining that mirror by hand is exactly the "general Unicode
// database" spec.md's non-goals disclaim. Code points with no entry in
// the table are treated as Canonical_Combining_Class 0 (starters), which
// is correct for the overwhelming majority of Unicode and only
// mis-reorders combining marks from scripts outside this subset's
// coverage.
package ccc
