/*
Package bigint implements immutable arbitrary-precision signed integers.
It provides exact arithmetic for values of unbounded magnitude and is
intended for consumers that need correctness beyond the native machine-word
range, such as combinatorics, exact rational arithmetic, or cryptographic
scaffolding.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of base-1,000,000 digits holding the absolute
    value, least significant digit first.

The base is the largest power of 10 whose squared maximal digit still fits
in an int64 accumulator, so single-digit products never overflow during
multiplication. Each digit corresponds to exactly six characters of the
decimal text form, which keeps conversions between text and digits simple.

Every value exposed by the package is canonical: digits are in [0, [Base]),
the magnitude has no zero digit at its most significant end, and zero is
represented exactly one way, as a positive sign with an empty magnitude.
Intermediate results of arithmetic may temporarily hold negative or
overflowing digits; a single normalization routine restores canonical form
before any value is returned.

# Operations

The package supports exact addition, subtraction, negation, absolute
value, multiplication, and truncating division with remainder. All results
are exact: no operation rounds, truncates, or overflows. Multiplication is
schoolbook, and division reconstructs each quotient digit by restoring
subtraction with power-of-two trial multipliers; both favor the simplest
correct algorithm over speed and are not tuned for cryptographic-scale
operands.

All relational predicates derive from a single three-way comparison,
[Int.Cmp].

# Conversions

The package converts integers:

  - from/to string:
    [Parse], [Int.String], [Int.Format].
  - from/to int64:
    [New], [Int.Int64].

Textual exchange with other systems uses plain decimal text through
[Int.MarshalText], [Int.UnmarshalText], [Int.Scan], and [Int.Value].
No other serialization format is supported.

# Errors

Methods return errors in two cases only: [Parse] rejects malformed input,
and [Int.QuoRem] (with [Int.Quo] and [Int.Rem]) rejects a zero divisor.
The Must variants of these methods panic instead of returning an error,
which is convenient for initializing package-level variables and for call
sites that have proven the failure impossible.
*/
package bigint
