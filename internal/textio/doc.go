// Package textio turns raw file bytes into case-folded lines.
//
// Files are decoded as UTF-8 unless a byte-order mark says otherwise
// (UTF-8 BOM is dropped, UTF-16 LE/BE is transcoded). Invalid byte
// sequences are replaced with U+FFFD so a single bad byte never fails
// a whole file. Lines end at "\n", "\r\n" or a lone "\r".
package textio
