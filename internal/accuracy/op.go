package accuracy

import (
	"math"
	"strings"

	"github.com/govalues/fixed/fixed32"
	"github.com/govalues/fixed/fixed64"
	"github.com/govalues/fixed/internal/poly"
)

// Op is an operation available in both formats, together with its
// floating-point reference and the inputs it is measured on.
type Op struct {
	// Name is the name of the most precise tier, for example "Sqrt".
	Name string
	// Arity is the number of arguments.
	Arity int
	// Tiered is false for operations without Fast and Fastest variants.
	Tiered bool
	// Ref computes the exact result in float64.
	Ref func(args []float64) float64
	// Err measures the error of a result.
	Err Evaluator
	// Domain reports whether the rounded arguments are valid, nil accepts all.
	Domain func(args []float64) bool
	// Inputs holds sets of generators, one generator per argument.
	Inputs [][]Generator
	// Basic holds hand-picked arguments measured before the random ones.
	Basic [][]float64

	fn32 func(t poly.Tier, args []fixed32.Fixed) fixed32.Fixed
	fn64 func(t poly.Tier, args []fixed64.Fixed) fixed64.Fixed
}

// FuncName returns the name of the function implementing the tier.
func (op *Op) FuncName(t poly.Tier) string {
	if !op.Tiered {
		return op.Name
	}
	return op.Name + t.Suffix()
}

// Eval32 calls the Q16.16 implementation of the tier.
// Untiered operations ignore t.
func (op *Op) Eval32(t poly.Tier, args ...fixed32.Fixed) fixed32.Fixed {
	return op.fn32(t, args)
}

// Eval64 calls the Q32.32 implementation of the tier.
// Untiered operations ignore t.
func (op *Op) Eval64(t poly.Tier, args ...fixed64.Fixed) fixed64.Fixed {
	return op.fn64(t, args)
}

// eval converts rounded arguments to f, calls the implementation and
// converts the result back.
func (op *Op) eval(f Format, t poly.Tier, args []float64) float64 {
	if f == Fixed32 {
		var xs [2]fixed32.Fixed
		for i, a := range args {
			xs[i] = fixed32.FromDouble(a)
		}
		return fixed32.ToDouble(op.fn32(t, xs[:len(args)]))
	}
	var xs [2]fixed64.Fixed
	for i, a := range args {
		xs[i] = fixed64.FromDouble(a)
	}
	return fixed64.ToDouble(op.fn64(t, xs[:len(args)]))
}

// Ops returns all registered operations in a stable order.
func Ops() []*Op {
	return append([]*Op(nil), registry...)
}

// Lookup finds an operation by name, ignoring case.
func Lookup(name string) (*Op, bool) {
	for _, op := range registry {
		if strings.EqualFold(op.Name, name) {
			return op, true
		}
	}
	return nil, false
}

func unary[T any](fs ...func(T) T) func(poly.Tier, []T) T {
	return func(t poly.Tier, args []T) T {
		return fs[min(int(t), len(fs)-1)](args[0])
	}
}

func binary[T any](fs ...func(T, T) T) func(poly.Tier, []T) T {
	return func(t poly.Tier, args []T) T {
		return fs[min(int(t), len(fs)-1)](args[0], args[1])
	}
}

func ref1(f func(float64) float64) func([]float64) float64 {
	return func(args []float64) float64 { return f(args[0]) }
}

func ref2(f func(float64, float64) float64) func([]float64) float64 {
	return func(args []float64) float64 { return f(args[0], args[1]) }
}

func each(gs ...Generator) [][]Generator {
	res := make([][]Generator, len(gs))
	for i, g := range gs {
		res[i] = []Generator{g}
	}
	return res
}

func values(vs ...float64) [][]float64 {
	res := make([][]float64, len(vs))
	for i, v := range vs {
		res[i] = []float64{v}
	}
	return res
}

func positive(args []float64) bool    { return args[0] > 0 }
func nonNegative(args []float64) bool { return args[0] >= 0 }
func nonZero(args []float64) bool     { return args[0] != 0 }
func unit(args []float64) bool        { return args[0] >= -1 && args[0] <= 1 }
func divisor(args []float64) bool     { return args[1] != 0 }
func notOrigin(args []float64) bool   { return args[0] != 0 || args[1] != 0 }

var (
	rcpValues = values(
		0.03, 0.125, 0.5, 1, 2, 3, 3.999, 4, 7.777, 11.12345, 12, 256, 30000,
	)
	sinCosValues = values(
		-16.1234, -4.444, -0.5, 0, 0.12345, 0.5, 1.2, 2.1, math.Pi,
		1.9999*math.Pi, 2.0001*math.Pi, 4.56*math.Pi, 16*math.Pi,
	)
	asinCosValues = values(
		-0.9999972383957, -0.99, -0.95, -0.9, -0.8, -0.75, -0.73, -0.71,
		-0.7071059781592, -0.7, -0.65, -0.5, -0.321, -0.11211, -0.000014884,
		0, 0.00001, 0.321, 0.5521, 0.7071059781592, 0.99, 0.9999972383957,
	)
)

var registry = []*Op{
	// Rounding
	{
		Name: "Ceil", Arity: 1,
		Ref: ref1(math.Ceil), Err: Absolute(),
		Inputs: each(Linear(-1e4, 1e4)),
		fn32:   unary(fixed32.Ceil),
		fn64:   unary(fixed64.Ceil),
	},
	{
		Name: "Floor", Arity: 1,
		Ref: ref1(math.Floor), Err: Absolute(),
		Inputs: each(Linear(-1e4, 1e4)),
		fn32:   unary(fixed32.Floor),
		fn64:   unary(fixed64.Floor),
	},
	{
		Name: "Round", Arity: 1,
		Ref:    ref1(func(x float64) float64 { return math.Floor(x + 0.5) }),
		Err:    Absolute(),
		Inputs: each(Linear(-1e4, 1e4)),
		fn32:   unary(fixed32.Round),
		fn64:   unary(fixed64.Round),
	},
	{
		Name: "Fract", Arity: 1,
		Ref:    ref1(func(x float64) float64 { return x - math.Floor(x) }),
		Err:    Absolute(),
		Inputs: each(Linear(-1e4, 1e4)),
		fn32:   unary(fixed32.Fract),
		fn64:   unary(fixed64.Fract),
	},

	// Arithmetic
	{
		Name: "Add", Arity: 2,
		Ref:    ref2(func(a, b float64) float64 { return a + b }),
		Err:    Absolute(),
		Inputs: [][]Generator{{Linear(-1e4, 1e4), Linear(-1e4, 1e4)}},
		fn32:   binary(fixed32.Add),
		fn64:   binary(fixed64.Add),
	},
	{
		Name: "Sub", Arity: 2,
		Ref:    ref2(func(a, b float64) float64 { return a - b }),
		Err:    Absolute(),
		Inputs: [][]Generator{{Linear(-1e4, 1e4), Linear(-1e4, 1e4)}},
		fn32:   binary(fixed32.Sub),
		fn64:   binary(fixed64.Sub),
	},
	{
		Name: "Mul", Arity: 2,
		Ref:    ref2(func(a, b float64) float64 { return a * b }),
		Err:    Absolute(),
		Inputs: [][]Generator{{Linear(-100, 100), Linear(-100, 100)}},
		fn32:   binary(fixed32.Mul),
		fn64:   binary(fixed64.Mul),
	},
	{
		Name: "Div", Arity: 2, Tiered: true,
		Ref:    ref2(func(a, b float64) float64 { return a / b }),
		Err:    Division(DefaultThreshold),
		Domain: divisor,
		Inputs: [][]Generator{{Linear(-1e3, 1e3), Linear(-100, 100)}},
		fn32:   binary(fixed32.Div, fixed32.DivFast, fixed32.DivFastest),
		fn64:   binary(fixed64.Div, fixed64.DivFast, fixed64.DivFastest),
	},
	{
		Name: "DivPrecise", Arity: 2,
		Ref:    ref2(func(a, b float64) float64 { return a / b }),
		Err:    Division(DefaultThreshold),
		Domain: divisor,
		Inputs: [][]Generator{{Linear(-1e3, 1e3), Linear(-100, 100)}},
		fn32:   binary(fixed32.DivPrecise),
		fn64:   binary(fixed64.DivPrecise),
	},
	{
		Name: "Mod", Arity: 2,
		Ref:    ref2(math.Mod),
		Err:    Absolute(),
		Domain: divisor,
		Inputs: [][]Generator{{Linear(-1e3, 1e3), Linear(-100, 100)}},
		fn32:   binary(fixed32.Mod),
		fn64:   binary(fixed64.Mod),
	},
	{
		Name: "Min", Arity: 2,
		Ref:    ref2(math.Min),
		Err:    Absolute(),
		Inputs: [][]Generator{{Linear(-1e4, 1e4), Linear(-1e4, 1e4)}},
		fn32:   binary(fixed32.Min),
		fn64:   binary(fixed64.Min),
	},
	{
		Name: "Max", Arity: 2,
		Ref:    ref2(math.Max),
		Err:    Absolute(),
		Inputs: [][]Generator{{Linear(-1e4, 1e4), Linear(-1e4, 1e4)}},
		fn32:   binary(fixed32.Max),
		fn64:   binary(fixed64.Max),
	},

	// Roots and reciprocals
	{
		Name: "Rcp", Arity: 1, Tiered: true,
		Ref:    ref1(func(x float64) float64 { return 1 / x }),
		Err:    Relative(DefaultThreshold),
		Domain: nonZero,
		Inputs: each(Exponential(0.01, 40)),
		Basic:  rcpValues,
		fn32:   unary(fixed32.Rcp, fixed32.RcpFast, fixed32.RcpFastest),
		fn64:   unary(fixed64.Rcp, fixed64.RcpFast, fixed64.RcpFastest),
	},
	{
		Name: "Sqrt", Arity: 1, Tiered: true,
		Ref:    ref1(math.Sqrt),
		Err:    Relative(DefaultThreshold),
		Domain: nonNegative,
		Inputs: each(Exponential(0.01, 40), Exponential(40, 30000)),
		Basic:  rcpValues,
		fn32:   unary(fixed32.Sqrt, fixed32.SqrtFast, fixed32.SqrtFastest),
		fn64:   unary(fixed64.Sqrt, fixed64.SqrtFast, fixed64.SqrtFastest),
	},
	{
		Name: "SqrtPrecise", Arity: 1,
		Ref:    ref1(math.Sqrt),
		Err:    Relative(DefaultThreshold),
		Domain: nonNegative,
		Inputs: each(Exponential(0.01, 40), Exponential(40, 30000)),
		Basic:  rcpValues,
		fn32:   unary(fixed32.SqrtPrecise),
		fn64:   unary(fixed64.SqrtPrecise),
	},
	{
		Name: "RSqrt", Arity: 1, Tiered: true,
		Ref:    ref1(func(x float64) float64 { return 1 / math.Sqrt(x) }),
		Err:    Relative(DefaultThreshold),
		Domain: positive,
		Inputs: each(Exponential(0.01, 40)),
		Basic:  rcpValues,
		fn32:   unary(fixed32.RSqrt, fixed32.RSqrtFast, fixed32.RSqrtFastest),
		fn64:   unary(fixed64.RSqrt, fixed64.RSqrtFast, fixed64.RSqrtFastest),
	},

	// Exponentials and logarithms
	{
		Name: "Exp", Arity: 1, Tiered: true,
		Ref:    ref1(math.Exp),
		Err:    Relative(DefaultThreshold),
		Inputs: each(Linear(-10, 10)),
		fn32:   unary(fixed32.Exp, fixed32.ExpFast, fixed32.ExpFastest),
		fn64:   unary(fixed64.Exp, fixed64.ExpFast, fixed64.ExpFastest),
	},
	{
		Name: "Exp2", Arity: 1, Tiered: true,
		Ref:    ref1(math.Exp2),
		Err:    Relative(DefaultThreshold),
		Inputs: each(Linear(-10, 10)),
		fn32:   unary(fixed32.Exp2, fixed32.Exp2Fast, fixed32.Exp2Fastest),
		fn64:   unary(fixed64.Exp2, fixed64.Exp2Fast, fixed64.Exp2Fastest),
	},
	{
		Name: "Log", Arity: 1, Tiered: true,
		Ref:    ref1(math.Log),
		Err:    Relative(DefaultThreshold),
		Domain: positive,
		Inputs: each(Exponential(0.001, 30000)),
		fn32:   unary(fixed32.Log, fixed32.LogFast, fixed32.LogFastest),
		fn64:   unary(fixed64.Log, fixed64.LogFast, fixed64.LogFastest),
	},
	{
		Name: "Log2", Arity: 1, Tiered: true,
		Ref:    ref1(math.Log2),
		Err:    Relative(DefaultThreshold),
		Domain: positive,
		Inputs: each(Exponential(0.001, 30000)),
		fn32:   unary(fixed32.Log2, fixed32.Log2Fast, fixed32.Log2Fastest),
		fn64:   unary(fixed64.Log2, fixed64.Log2Fast, fixed64.Log2Fastest),
	},
	{
		Name: "Pow", Arity: 2, Tiered: true,
		Ref:    ref2(math.Pow),
		Err:    Relative(DefaultThreshold),
		Domain: nonNegative,
		Inputs: [][]Generator{{Exponential(0.01, 10), Linear(-3, 3)}},
		fn32:   binary(fixed32.Pow, fixed32.PowFast, fixed32.PowFastest),
		fn64:   binary(fixed64.Pow, fixed64.PowFast, fixed64.PowFastest),
	},

	// Trigonometry
	{
		Name: "Sin", Arity: 1, Tiered: true,
		Ref:    ref1(math.Sin),
		Err:    Absolute(),
		Inputs: each(Linear(-10, 10), Linear(-100, 100), Linear(-1e4, 1e4)),
		Basic:  sinCosValues,
		fn32:   unary(fixed32.Sin, fixed32.SinFast, fixed32.SinFastest),
		fn64:   unary(fixed64.Sin, fixed64.SinFast, fixed64.SinFastest),
	},
	{
		Name: "Cos", Arity: 1, Tiered: true,
		Ref:    ref1(math.Cos),
		Err:    Absolute(),
		Inputs: each(Linear(-10, 10), Linear(-100, 100), Linear(-1e4, 1e4)),
		Basic:  sinCosValues,
		fn32:   unary(fixed32.Cos, fixed32.CosFast, fixed32.CosFastest),
		fn64:   unary(fixed64.Cos, fixed64.CosFast, fixed64.CosFastest),
	},
	{
		Name: "Tan", Arity: 1, Tiered: true,
		Ref:    ref1(math.Tan),
		Err:    Relative(DefaultThreshold),
		Inputs: each(Linear(-0.99, -0.1), Linear(-0.1, 0.1), Linear(0.1, 0.99)),
		fn32:   unary(fixed32.Tan, fixed32.TanFast, fixed32.TanFastest),
		fn64:   unary(fixed64.Tan, fixed64.TanFast, fixed64.TanFastest),
	},
	{
		Name: "Asin", Arity: 1, Tiered: true,
		Ref:    ref1(math.Asin),
		Err:    Absolute(),
		Domain: unit,
		Inputs: each(Linear(-1, 1)),
		Basic:  asinCosValues,
		fn32:   unary(fixed32.Asin, fixed32.AsinFast, fixed32.AsinFastest),
		fn64:   unary(fixed64.Asin, fixed64.AsinFast, fixed64.AsinFastest),
	},
	{
		Name: "Acos", Arity: 1, Tiered: true,
		Ref:    ref1(math.Acos),
		Err:    Absolute(),
		Domain: unit,
		Inputs: each(Linear(-1, 1)),
		Basic:  asinCosValues,
		fn32:   unary(fixed32.Acos, fixed32.AcosFast, fixed32.AcosFastest),
		fn64:   unary(fixed64.Acos, fixed64.AcosFast, fixed64.AcosFastest),
	},
	{
		Name: "Atan", Arity: 1, Tiered: true,
		Ref:    ref1(math.Atan),
		Err:    Absolute(),
		Inputs: each(Linear(-1, 1), Linear(-1000, 1000)),
		fn32:   unary(fixed32.Atan, fixed32.AtanFast, fixed32.AtanFastest),
		fn64:   unary(fixed64.Atan, fixed64.AtanFast, fixed64.AtanFastest),
	},
	{
		Name: "Atan2", Arity: 2, Tiered: true,
		Ref:    ref2(math.Atan2),
		Err:    Absolute(),
		Domain: notOrigin,
		Inputs: [][]Generator{{Linear(-1e3, 1e3), Linear(-1e3, 1e3)}},
		fn32:   binary(fixed32.Atan2, fixed32.Atan2Fast, fixed32.Atan2Fastest),
		fn64:   binary(fixed64.Atan2, fixed64.Atan2Fast, fixed64.Atan2Fastest),
	},
}
