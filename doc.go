/*
Package fixed implements the invalid argument policy shared by the
deterministic fixed-point packages [github.com/govalues/fixed/fixed32] and
[github.com/govalues/fixed/fixed64].
It is designed for simulations, lockstep networking and replays, where every
platform must compute bit-identical results.

# Representation

Both formats are plain signed integers with an implied binary point:

	| Package | Type          | Format  | Range                       | Resolution |
	| ------- | ------------- | ------- | --------------------------- | ---------- |
	| fixed32 | fixed32.Fixed | Q16.16  | [-32768, 32768)             | 2^-16      |
	| fixed64 | fixed64.Fixed | Q32.32  | [-2147483648, 2147483648)   | 2^-32      |

Addition and subtraction are ordinary integer operations and wrap around on
overflow.
Multiplication truncates the product toward negative infinity.
The elementary functions use integer operations only, so their results do
not depend on the floating-point unit, the compiler or the architecture.

# Conversions

Both packages provide the same conversions:

  - from/to float64 and float32:
    FromDouble, ToDouble, FromFloat, ToFloat.
  - from/to int32:
    FromInt, FloorToInt, CeilToInt, RoundToInt.
  - from/to string:
    Parse, Fixed.String, Fixed.Format.
    Every value has a finite decimal expansion, which is printed exactly.
  - from/to [github.com/shopspring/decimal]:
    FromDecimal, Fixed.Decimal.
  - between formats:
    fixed32.FromFixed64, fixed32.ToFixed64.

# Tiers

Most functions come in three tiers.
The default one is the most precise, the Fast and Fastest variants use
smaller polynomials and tables:

	| Function        | Default | Fast    | Fastest |
	| --------------- | ------- | ------- | ------- |
	| Exp, Exp2, Pow  | 23 bits | 18 bits | 13 bits |
	| Log, Log2       | 25 bits | 15 bits | 12 bits |
	| Sqrt            | 23 bits | 16 bits | 13 bits |
	| Rcp             | 24 bits | 16 bits | 11 bits |
	| RSqrt           | 24 bits | 16 bits | 10 bits |
	| Sin, Cos, Tan   | 27 bits | 19 bits | 12 bits |
	| Atan, Atan2     | 28 bits | 17 bits | 11 bits |

The figures are the worst-case precision of the approximation kernels.
Q16.16 results are further limited by the 16 fractional bits of the format.
The Q32.32 default tiers of Rcp and RSqrt add a Newton-Raphson step.
Div is exact, DivFast and DivFastest multiply by the Fast and Fastest
reciprocals.

# Invalid Arguments

Functions are total: every call returns a value.
An argument outside of the domain of a function, such as a division by zero,
the square root of a negative number or Atan2(0, 0), is reported to a
process-wide [Handler] before the function returns 0.

The following handlers are available:

  - [Trap], the default, panics with an [ArgumentError].
    [Catch] converts such a panic back into an error.
  - [Ignore] does nothing.
  - [Log] writes a warning to a [github.com/sirupsen/logrus] logger.

Use [SetHandler] to install a handler.
Handlers are stored atomically and can be swapped while other goroutines
are computing.
*/
package fixed
