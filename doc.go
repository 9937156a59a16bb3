// Package huffzip compresses byte strings with canonical Huffman codes.
//
// A compressed container stores the original length, the (symbol, code size)
// pairs of a canonical code in canonical order, and the packed codes of every
// input byte.  The shape of the Huffman tree is never stored: a canonical
// code is fully determined by its list of sizes, so the decoder rebuilds the
// exact same codes, and from them a decoding tree.
//
// Compressing the same input always produces the same output.  Weight ties
// while building the tree are broken in favor of the node created first, with
// leaves created in ascending symbol order.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffzip
