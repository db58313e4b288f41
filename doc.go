/* Package main: matcalc -- a postfix integer matrix calculator

matcalc reads a stream of tokens, keeping an operand stack of integer
matrices. ASCII whitespace separates tokens but is otherwise ignored; every
other token is a single byte, so each byte of a multi-byte UTF-8 character is
an unrecognized token of its own:

	[ R C e...   push a new R x C matrix, reading its R*C entries row by row
	+            pop top and second, push top + second
	*            pop top and second, push top × second
	>            pop top, discarding it
	=            print top
	#            print every matrix, top to bottom

So "[ 1 2 1 2 [ 1 2 3 4 + =" prints the 1x2 matrix "4 6".

Matrices print one row per line, each entry right justified in 8 columns and
followed by a space, with a blank line after the last row.

Problems with any one token, like an unknown character, a malformed literal,
too few operands, or operands of incompatible shapes, are reported to stderr
as "file:line: description: detail", and evaluation continues with the next
token. Whatever is left on the stack at the end of input is discarded.

With -scalar, operands are plain integers instead, written like "-12"; + and
* work the same, > pops and prints, and every value prints on its own line.

Input comes from any files named on the command line, read in order, or from
stdin; an interactive terminal gets a line editing prompt.

*/
package main
