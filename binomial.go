package nurbs

// binomial returns C(n, k), or 0 when k is outside [0, n].
// Each partial product ans*(n+1-j)/j is itself a binomial coefficient, so
// the integer division is exact.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	ans := 1
	for j := 1; j <= k; j++ {
		ans = ans * (n + 1 - j) / j
	}

	return float64(ans)
}
