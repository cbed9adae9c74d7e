/*
Package dedupe contains the seen-hash sets used to drop repeated lines.

A line is never stored, only a hash of its bytes. Three sets are provided:

* Exact (default)
** xxHash64, seed 64
** 8 bytes per distinct line plus map overhead
** A line is suppressed only if it, or a line with the same 64 bit hash, was already emitted

* Wide
** xxh3 128 bit, seed 64
** 16 bytes per distinct line plus map overhead
** Collision rate is negligible for any realistic stream

* Bounded
** Fixed size table of xxHash64 values, heavily inspired from Jeffrey Hodge's OppoBloom Filter:
https://github.com/jmhodges/opposite_of_a_bloom_filter
** Memory never grows past the configured size
** Can return false negatives, i.e. a line is emitted again once its slot was taken by another line

False negatives result in a repeated line on output (meh)
False positives result in a lost line (bad), and only happen on a full hash collision.
*/
package dedupe
