package transition

func f64(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func mp(token string) Multipole {
	m, err := ParseMultipole(token)
	if err != nil {
		panic(err)
	}
	return m
}
