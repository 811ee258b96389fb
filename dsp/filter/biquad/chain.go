package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Butterworth designs of order > 2 produce one section per pole pair.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Prime sets every section to the steady state it would reach after a long
// constant input x. Section k sees x scaled by the DC gain of sections 0..k-1.
func (c *Chain) Prime(x float64) {
	level := x
	for i := range c.sections {
		ss := c.sections[i].SteadyState()
		c.sections[i].SetState([2]float64{ss[0] * level, ss[1] * level})
		level *= c.sections[i].DCGain()
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order. First-order sections count once.
func (c *Chain) Order() int {
	order := 0
	for i := range c.sections {
		if c.sections[i].FirstOrder() {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// DCGain returns the product of the section DC gains.
func (c *Chain) DCGain() float64 {
	g := 1.0
	for i := range c.sections {
		g *= c.sections[i].DCGain()
	}

	return g
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
