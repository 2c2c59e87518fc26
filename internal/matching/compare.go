package matching

import (
	"github.com/OnnIInnO/Recruiting2.0/internal/types"
)

// target is a normalized comparison value that may be absent.
type target struct {
	value float64
	ok    bool
}

func jobTarget(reqs types.Requirements, d types.Dimension) target {
	r, ok := reqs[d]
	if !ok {
		return target{}
	}
	return target{value: Normalize(r.Target), ok: true}
}

func companyTarget(p types.Profile, d types.Dimension) target {
	s, ok := p[d]
	if !ok {
		return target{}
	}
	return target{value: Normalize(s.Score), ok: true}
}

// penalty compares a normalized user score with a normalized target.
// Falling short costs the full gap, overshooting costs the gap scaled by
// the configured overshoot penalty.
func (e *Engine) penalty(user, t float64) float64 {
	diff := user - t
	if diff < 0 {
		return clamp01(1 + diff)
	}
	return clamp01(1 - diff*e.cfg.OvershootPenalty)
}

// compareDimension scores one wellbeing or values dimension against the job
// requirement and the company profile. With neither side present the target
// counts as 0.
func (e *Engine) compareDimension(user float64, job, company target) float64 {
	switch {
	case job.ok && company.ok:
		return clamp01(e.cfg.JobShare*e.penalty(user, job.value) +
			e.cfg.CompanyShare*e.penalty(user, company.value))
	case job.ok:
		return e.penalty(user, job.value)
	case company.ok:
		return e.penalty(user, company.value)
	default:
		return e.penalty(user, 0)
	}
}

// compareSkill scores a skill against its requirement. Exceeding the
// requirement is never penalized.
func compareSkill(user float64, job target) float64 {
	t := 0.0
	if job.ok {
		t = job.value
	}
	gap := t - user
	if gap < 0 {
		gap = 0
	}
	return clamp01(1 - gap)
}
