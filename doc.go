/*
Package priority parses weighted preference headers, such as Accept-Encoding
and Accept-Language, and ranks a set of candidate values against them.

A header is a comma-separated list of items like

	gzip;q=0.8, br, identity;q=0

where each item is a token made of letters, digits, '/', '*' and '-',
optionally followed by ';'-separated parameters. Only the q parameter
is interpreted; it sets the item's quality (DefaultQ if missing).

Nothing here ever errors. Items that do not match the grammar are dropped,
and a q value that cannot be parsed yields the Unacceptable sentinel.
Qualities are not clamped to [0, 1].

Tokens are matched against candidates by exact string comparison:
there is no case folding, and "*" only matches a candidate "*".
*/
package priority
