// Command tmfgen solves for the TMF kernel family and writes the
// coefficient table consumed by package kernel.
//
// Each kernel is a piecewise polynomial over Width unit phases. For a
// derivative order d (d=-1 drops the interpolation requirement of d=0),
// continuity order c and accuracy a, the coefficients satisfy
//
//	sum_j p_j(u) (Width/2 - j - u)^n = n! [n == d]   for n < max(d,0)+a
//
// identically in u, plus p_j(0) = [j == Width/2] when d == 0 and C^c
// continuity across the knots and at both ends. The smallest Width, then
// the smallest degree, that admits a solution is used, and among the
// solutions the one with minimum coefficient norm in a basis centred on
// u = 1/2, which keeps even kernels symmetric. Everything is exact.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"
)

const (
	maxD = 2
	maxC = 3
	maxA = 4
)

func main() {
	out := flag.String("o", "tmf_table.go", "output file")
	maxWidth := flag.Int("width", 6, "largest support width tried")
	maxDegree := flag.Int("degree", 5, "largest polynomial degree tried")
	flag.Parse()

	var buf bytes.Buffer

	buf.WriteString("// Code generated by tmfgen; DO NOT EDIT.\n\npackage kernel\n\nvar tmfTable = []tmfEntry{\n")

	for d := -1; d <= maxD; d++ {
		for c := -1; c <= maxC; c++ {
			for a := 1; a <= maxA; a++ {
				width, coef := search(d, c, a, *maxWidth, *maxDegree)
				if coef == nil {
					log.Printf("tmf d=%d c=%d a=%d: no kernel", d, c, a)
					continue
				}

				fmt.Fprintf(&buf, "\t{D: %d, C: %d, A: %d, Width: %d, Coef: [][]float64{\n", d, c, a, width)

				for _, piece := range coef {
					vals := make([]string, len(piece))
					for m, r := range piece {
						f, _ := r.Float64()
						vals[m] = strconv.FormatFloat(f, 'g', -1, 64)
					}

					buf.WriteString("\t\t{" + strings.Join(vals, ", ") + "},\n")
				}

				buf.WriteString("\t}},\n")
			}
		}
	}

	buf.WriteString("}\n")

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}

func search(d, c, a, maxWidth, maxDegree int) (int, [][]*big.Rat) {
	for n := 2; n <= maxWidth; n += 2 {
		for m := 0; m <= maxDegree; m++ {
			if coef := solve(d, c, a, n, m); coef != nil {
				return n, coef
			}
		}
	}

	return 0, nil
}

type row struct {
	a   []*big.Rat
	rhs *big.Rat
}

func zeros(n int) []*big.Rat {
	r := make([]*big.Rat, n)
	for i := range r {
		r[i] = new(big.Rat)
	}

	return r
}

func ratInt(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

func binom(n, k int) *big.Rat {
	return new(big.Rat).SetInt(new(big.Int).Binomial(int64(n), int64(k)))
}

func fact(n int) *big.Rat {
	return new(big.Rat).SetInt(new(big.Int).MulRange(1, int64(max(n, 1))))
}

func pow(b *big.Rat, e int) *big.Rat {
	r := ratInt(1)
	for range e {
		r.Mul(r, b)
	}

	return r
}

// solve returns the coefficients of n phases of degree m in ascending
// monomial order, or nil when the constraints are inconsistent.
func solve(d, c, a, n, m int) [][]*big.Rat {
	deriv := max(d, 0)
	nun := n * (m + 1)
	idx := func(j, k int) int { return j*(m+1) + k }

	var rows []row

	for p := range deriv + a {
		eqs := make([][]*big.Rat, m+p+1)
		for i := range eqs {
			eqs[i] = zeros(nun)
		}

		for j := range n {
			shift := ratInt(int64(n/2 - j))

			for k := 0; k <= m; k++ {
				for q := 0; q <= p; q++ {
					coef := new(big.Rat).Mul(binom(p, q), pow(shift, p-q))
					if q%2 == 1 {
						coef.Neg(coef)
					}

					eqs[k+q][idx(j, k)].Add(eqs[k+q][idx(j, k)], coef)
				}
			}
		}

		for i, eq := range eqs {
			rhs := new(big.Rat)
			if i == 0 && p == deriv {
				rhs = fact(p)
			}

			rows = append(rows, row{eq, rhs})
		}
	}

	if d == 0 {
		for j := range n {
			r := zeros(nun)
			r[idx(j, 0)].SetInt64(1)

			rhs := new(big.Rat)
			if j == n/2 {
				rhs.SetInt64(1)
			}

			rows = append(rows, row{r, rhs})
		}
	}

	for r := 0; r <= c; r++ {
		at := func(j int, one bool) []*big.Rat {
			out := zeros(nun)

			for k := r; k <= m; k++ {
				if !one && k != r {
					continue
				}

				out[idx(j, k)].Quo(fact(k), fact(k-r))
			}

			return out
		}

		for j := range n - 1 {
			lhs, rhs := at(j, true), at(j+1, false)
			for i := range lhs {
				lhs[i].Sub(lhs[i], rhs[i])
			}

			rows = append(rows, row{lhs, new(big.Rat)})
		}

		rows = append(rows, row{at(0, false), new(big.Rat)}, row{at(n-1, true), new(big.Rat)})
	}

	// centred basis: monomial coefficient i = sum_k t[i][k] * centred k
	t := make([][]*big.Rat, m+1)
	for i := range t {
		t[i] = zeros(m + 1)
		for k := i; k <= m; k++ {
			t[i][k].Mul(binom(k, i), pow(big.NewRat(-1, 2), k-i))
		}
	}

	for ri := range rows {
		out := zeros(nun)

		for j := range n {
			for k := 0; k <= m; k++ {
				for i := 0; i <= m; i++ {
					out[idx(j, k)].Add(out[idx(j, k)], new(big.Rat).Mul(rows[ri].a[idx(j, i)], t[i][k]))
				}
			}
		}

		rows[ri].a = out
	}

	basis, rhs, ok := reduce(rows, nun)
	if !ok {
		return nil
	}

	x := minNorm(basis, rhs, nun)

	coef := make([][]*big.Rat, n)
	for j := range n {
		coef[j] = zeros(m + 1)
		for i := 0; i <= m; i++ {
			for k := 0; k <= m; k++ {
				coef[j][i].Add(coef[j][i], new(big.Rat).Mul(t[i][k], x[idx(j, k)]))
			}
		}
	}

	return coef
}

// reduce brings the system to reduced row echelon form and returns the
// independent rows, or ok=false when it is inconsistent.
func reduce(rows []row, nun int) ([][]*big.Rat, []*big.Rat, bool) {
	aug := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		aug[i] = append(append([]*big.Rat{}, r.a...), r.rhs)
	}

	rank := 0

	for col := 0; col < nun && rank < len(aug); col++ {
		piv := -1

		for i := rank; i < len(aug); i++ {
			if aug[i][col].Sign() != 0 {
				piv = i
				break
			}
		}

		if piv < 0 {
			continue
		}

		aug[rank], aug[piv] = aug[piv], aug[rank]
		inv := new(big.Rat).Inv(aug[rank][col])

		for k := range aug[rank] {
			aug[rank][k] = new(big.Rat).Mul(aug[rank][k], inv)
		}

		for i := range aug {
			if i == rank || aug[i][col].Sign() == 0 {
				continue
			}

			f := new(big.Rat).Set(aug[i][col])
			for k := range aug[i] {
				aug[i][k] = new(big.Rat).Sub(aug[i][k], new(big.Rat).Mul(f, aug[rank][k]))
			}
		}

		rank++
	}

	for i := rank; i < len(aug); i++ {
		if aug[i][nun].Sign() != 0 {
			return nil, nil, false
		}
	}

	basis := make([][]*big.Rat, rank)
	rhs := make([]*big.Rat, rank)

	for i := range rank {
		basis[i] = aug[i][:nun]
		rhs[i] = aug[i][nun]
	}

	return basis, rhs, true
}

// minNorm returns x = R^T y with (R R^T) y = rhs, the minimum-norm solution
// of R x = rhs for full-row-rank R.
func minNorm(r [][]*big.Rat, rhs []*big.Rat, nun int) []*big.Rat {
	n := len(r)

	g := make([][]*big.Rat, n)
	for i := range n {
		g[i] = zeros(n + 1)
		for k := range n {
			for c := range nun {
				g[i][k].Add(g[i][k], new(big.Rat).Mul(r[i][c], r[k][c]))
			}
		}

		g[i][n].Set(rhs[i])
	}

	for col := range n {
		piv := col
		for g[piv][col].Sign() == 0 {
			piv++
		}

		g[col], g[piv] = g[piv], g[col]
		inv := new(big.Rat).Inv(g[col][col])

		for k := range g[col] {
			g[col][k] = new(big.Rat).Mul(g[col][k], inv)
		}

		for i := range n {
			if i == col || g[i][col].Sign() == 0 {
				continue
			}

			f := new(big.Rat).Set(g[i][col])
			for k := range g[i] {
				g[i][k] = new(big.Rat).Sub(g[i][k], new(big.Rat).Mul(f, g[col][k]))
			}
		}
	}

	x := zeros(nun)
	for i := range n {
		for c := range nun {
			x[c].Add(x[c], new(big.Rat).Mul(r[i][c], g[i][n]))
		}
	}

	return x
}
