package scheduler

import (
	"fmt"
	"math"
	"strings"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing uint8

// Easing functions.
const (
	Linear Easing = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce
)

var easingNames = [...]string{
	"linear",
	"in_quad", "out_quad", "in_out_quad",
	"in_cubic", "out_cubic", "in_out_cubic",
	"in_quart", "out_quart", "in_out_quart",
	"in_quint", "out_quint", "in_out_quint",
	"in_sine", "out_sine", "in_out_sine",
	"in_expo", "out_expo", "in_out_expo",
	"in_circ", "out_circ", "in_out_circ",
	"in_elastic", "out_elastic", "in_out_elastic",
	"in_back", "out_back", "in_out_back",
	"in_bounce", "out_bounce", "in_out_bounce",
}

// String returns the easing name, e.g. "in_out_cubic".
func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("easing(%d)", e)
}

// ParseEasing looks up an easing by name. Hyphens and case are ignored.
func ParseEasing(name string) (Easing, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range easingNames {
		if n == key {
			return Easing(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5
)

// Apply returns the eased value of p. p is clamped to [0, 1].
func (e Easing) Apply(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	switch e {
	case InQuad:
		return p * p
	case OutQuad:
		return 1 - (1-p)*(1-p)
	case InOutQuad:
		return inOutPow(p, 2)
	case InCubic:
		return p * p * p
	case OutCubic:
		return 1 - math.Pow(1-p, 3)
	case InOutCubic:
		return inOutPow(p, 3)
	case InQuart:
		return math.Pow(p, 4)
	case OutQuart:
		return 1 - math.Pow(1-p, 4)
	case InOutQuart:
		return inOutPow(p, 4)
	case InQuint:
		return math.Pow(p, 5)
	case OutQuint:
		return 1 - math.Pow(1-p, 5)
	case InOutQuint:
		return inOutPow(p, 5)
	case InSine:
		return 1 - math.Cos(p*math.Pi/2)
	case OutSine:
		return math.Sin(p * math.Pi / 2)
	case InOutSine:
		return -(math.Cos(math.Pi*p) - 1) / 2
	case InExpo:
		if p == 0 {
			return 0
		}
		return math.Pow(2, 10*p-10)
	case OutExpo:
		if p == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*p)
	case InOutExpo:
		switch {
		case p == 0, p == 1:
			return p
		case p < 0.5:
			return math.Pow(2, 20*p-10) / 2
		default:
			return (2 - math.Pow(2, -20*p+10)) / 2
		}
	case InCirc:
		return 1 - math.Sqrt(1-p*p)
	case OutCirc:
		return math.Sqrt(1 - (p-1)*(p-1))
	case InOutCirc:
		if p < 0.5 {
			return (1 - math.Sqrt(1-4*p*p)) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*p+2, 2)) + 1) / 2
	case InElastic:
		if p == 0 || p == 1 {
			return p
		}
		return -math.Pow(2, 10*p-10) * math.Sin((p*10-10.75)*elasticC4)
	case OutElastic:
		if p == 0 || p == 1 {
			return p
		}
		return math.Pow(2, -10*p)*math.Sin((p*10-0.75)*elasticC4) + 1
	case InOutElastic:
		switch {
		case p == 0, p == 1:
			return p
		case p < 0.5:
			return -(math.Pow(2, 20*p-10) * math.Sin((20*p-11.125)*elasticC5)) / 2
		default:
			return math.Pow(2, -20*p+10)*math.Sin((20*p-11.125)*elasticC5)/2 + 1
		}
	case InBack:
		return backC3*p*p*p - backC1*p*p
	case OutBack:
		q := p - 1
		return 1 + backC3*q*q*q + backC1*q*q
	case InOutBack:
		if p < 0.5 {
			return math.Pow(2*p, 2) * ((backC2+1)*2*p - backC2) / 2
		}
		return (math.Pow(2*p-2, 2)*((backC2+1)*(p*2-2)+backC2) + 2) / 2
	case InBounce:
		return 1 - outBounce(1-p)
	case OutBounce:
		return outBounce(p)
	case InOutBounce:
		if p < 0.5 {
			return (1 - outBounce(1-2*p)) / 2
		}
		return (1 + outBounce(2*p-1)) / 2
	default:
		return p
	}
}

func inOutPow(p, n float64) float64 {
	if p < 0.5 {
		return math.Pow(2, n-1) * math.Pow(p, n)
	}
	return 1 - math.Pow(-2*p+2, n)/2
}

func outBounce(p float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}
