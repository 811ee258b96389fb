package pass

import "github.com/cwbudde/sbbviewer/dsp/filter/biquad"

// ButterworthLP designs a lowpass Butterworth cascade.
//
// It returns nil when order <= 0 or freq is not inside (0, sampleRate/2).
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassSection(k, butterworthQ(order, i)))
	}

	if order%2 != 0 {
		sections = append(sections, lowpassFirstOrder(k))
	}

	return sections
}
