package subset

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrInfeasible indicates the counter system has no non-negative integer solution.
	ErrInfeasible = errors.New("subset: no non-negative integer solution")
	// ErrBadCounter indicates an operation references a counter outside the target list.
	ErrBadCounter = errors.New("subset: operation references unknown counter")
	// ErrNegativeTarget indicates a negative target count.
	ErrNegativeTarget = errors.New("subset: target counts must be non-negative")
)

// MinPresses finds non-negative integers x_j minimizing Σ x_j subject to
//
//	Σ_{j : i ∈ ops[j]} x_j == targets[i]   for every counter i.
//
// The system is reduced exactly over the rationals. Pivot variables are
// then determined by the free ones, and each free variable is enumerated
// between 0 and the smallest target among the counters it touches, with
// branches abandoned once their running total cannot beat the best found.
//
// ErrInfeasible is returned when no assignment exists, for instance when a
// counter with a positive target is touched by no operation.
func MinPresses(ops [][]int, targets []int) (int, error) {
	m, n := len(targets), len(ops)
	for i, t := range targets {
		if t < 0 {
			return 0, fmt.Errorf("%w: counter %d = %d", ErrNegativeTarget, i, t)
		}
	}

	// 1) Coefficient matrix and per-operation upper bounds.
	a := make([][]int64, m)
	for i := range a {
		a[i] = make([]int64, n)
	}
	upper := make([]int64, n)
	touched := make([]bool, m)
	for j, op := range ops {
		upper[j] = math.MaxInt64
		for _, i := range op {
			if i < 0 || i >= m {
				return 0, fmt.Errorf("%w: op %d touches %d", ErrBadCounter, j, i)
			}
			a[i][j] = 1
			touched[i] = true
			upper[j] = min(upper[j], int64(targets[i]))
		}
		if len(op) == 0 {
			upper[j] = 0
		}
	}
	for i, t := range targets {
		if t > 0 && !touched[i] {
			return 0, fmt.Errorf("%w: counter %d is touched by no operation", ErrInfeasible, i)
		}
	}

	// 2) Exact reduction.
	sys, err := reduce(a, targets)
	if err != nil {
		return 0, err
	}

	// 3) Enumerate free variables.
	s := &pressSearch{sys: sys, upper: upper, best: -1, free: make([]int64, n)}
	s.walk(0, 0)
	if s.best < 0 {
		return 0, ErrInfeasible
	}
	return int(s.best), nil
}

// pivotRow expresses one pivot variable in integers:
//
//	den * x[col] = rhs - Σ coef[f] * x[f]   over free columns f.
type pivotRow struct {
	col  int
	den  int64
	rhs  int64
	coef []int64 // indexed like system.freeCols
}

type system struct {
	pivots   []pivotRow
	freeCols []int
}

// reduce brings [a | t] to reduced row echelon form over big.Rat and scales
// each pivot row to integers.
func reduce(a [][]int64, t []int) (*system, error) {
	m := len(a)
	n := 0
	if m > 0 {
		n = len(a[0])
	}
	mat := make([][]*big.Rat, m)
	for i := range mat {
		mat[i] = make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			mat[i][j] = new(big.Rat).SetInt64(a[i][j])
		}
		mat[i][n] = new(big.Rat).SetInt64(int64(t[i]))
	}

	pivotCols := make([]int, 0, m)
	isPivot := make([]bool, n)
	row := 0
	for col := 0; col < n && row < m; col++ {
		sel := -1
		for r := row; r < m; r++ {
			if mat[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		mat[row], mat[sel] = mat[sel], mat[row]

		inv := new(big.Rat).Inv(mat[row][col])
		for j := col; j <= n; j++ {
			mat[row][j].Mul(mat[row][j], inv)
		}
		for r := 0; r < m; r++ {
			if r == row || mat[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(mat[r][col])
			for j := col; j <= n; j++ {
				mat[r][j].Sub(mat[r][j], new(big.Rat).Mul(f, mat[row][j]))
			}
		}
		pivotCols = append(pivotCols, col)
		isPivot[col] = true
		row++
	}

	// Rows below the rank must read 0 = 0.
	for r := row; r < m; r++ {
		if mat[r][n].Sign() != 0 {
			return nil, fmt.Errorf("%w: inconsistent counter equations", ErrInfeasible)
		}
	}

	sys := &system{}
	for j := 0; j < n; j++ {
		if !isPivot[j] {
			sys.freeCols = append(sys.freeCols, j)
		}
	}
	for r, col := range pivotCols {
		// Common denominator of the row.
		den := big.NewInt(1)
		for j := 0; j <= n; j++ {
			d := mat[r][j].Denom()
			g := new(big.Int).GCD(nil, nil, den, d)
			den.Mul(den, new(big.Int).Quo(d, g))
		}
		scaled := func(q *big.Rat) int64 {
			v := new(big.Int).Mul(q.Num(), den)
			return v.Quo(v, q.Denom()).Int64()
		}
		pr := pivotRow{col: col, den: den.Int64(), rhs: scaled(mat[r][n]), coef: make([]int64, len(sys.freeCols))}
		for k, f := range sys.freeCols {
			pr.coef[k] = scaled(mat[r][f])
		}
		sys.pivots = append(sys.pivots, pr)
	}
	return sys, nil
}

type pressSearch struct {
	sys   *system
	upper []int64
	free  []int64 // value per free index
	best  int64
}

// walk assigns free variable k onward; sum is the total of assigned free values.
func (s *pressSearch) walk(k int, sum int64) {
	if s.best >= 0 && sum >= s.best {
		return
	}
	if k == len(s.sys.freeCols) {
		s.evaluate(sum)
		return
	}
	hi := s.upper[s.sys.freeCols[k]]
	for v := int64(0); v <= hi; v++ {
		s.free[k] = v
		s.walk(k+1, sum+v)
		if s.best >= 0 && sum+v >= s.best {
			break
		}
	}
	s.free[k] = 0
}

// evaluate derives every pivot variable and records a better total.
func (s *pressSearch) evaluate(sum int64) {
	total := sum
	for _, p := range s.sys.pivots {
		num := p.rhs
		for k, c := range p.coef {
			num -= c * s.free[k]
		}
		if num%p.den != 0 {
			return
		}
		x := num / p.den
		if x < 0 || x > s.upper[p.col] {
			return
		}
		total += x
	}
	if s.best < 0 || total < s.best {
		s.best = total
	}
}
