package dispatch

import (
	"math"

	"github.com/fleetcore/dispatchcore/cancellation"
	"github.com/fleetcore/dispatchcore/parse"
	"github.com/fleetcore/dispatchcore/valuetable"
)

// scoreCandidates computes spec.md §4.5.2's score for every candidate,
// skipping (not failing) any candidate referencing a missing driver or
// request (spec.md §4.5.7), any with non-positive expected reward or
// score, and any whose computation produced a non-finite value. Candidates
// skipped for an unknown driver/request or a non-finite score are logged at
// debug; those with non-positive expected reward or score are dropped
// without a log event.
func (d *Dispatcher) scoreCandidates(
	joint valuetable.Reader,
	drivers map[string]parse.Driver,
	requests map[string]parse.Request,
	candidates map[string][]parse.Candidate,
	timestamp int64,
) []scoredCandidate {
	var out []scoredCandidate

	for requestID, reqCandidates := range candidates {
		request, ok := requests[requestID]
		if !ok {
			d.cfg.logger.Debug().Str("request_id", requestID).Msg("dispatch: candidate references unknown request, skipping")
			continue
		}

		for _, cand := range reqCandidates {
			driver, ok := drivers[cand.DriverID]
			if !ok {
				d.cfg.logger.Debug().Str("driver_id", cand.DriverID).Msg("dispatch: candidate references unknown driver, skipping")
				continue
			}

			sc, ok := d.scoreOne(joint, driver, request, cand, timestamp)
			if !ok {
				continue
			}
			out = append(out, sc)
		}
	}

	return out
}

func (d *Dispatcher) scoreOne(
	joint valuetable.Reader,
	driver parse.Driver,
	request parse.Request,
	cand parse.Candidate,
	timestamp int64,
) (scoredCandidate, bool) {
	p := cancellation.CompletionRate(cand.Distance)
	expected := p * request.Reward
	if expected <= 0 {
		return scoredCandidate{}, false
	}

	rideSeconds := request.FinishTS - request.RequestTS
	travelSeconds := float64(rideSeconds) + cand.ETA
	tau := travelSeconds / d.cfg.stepSeconds

	v0 := joint.Get(driver.Cell, timestamp)
	rideEndTS := timestamp + int64(math.Round(travelSeconds))
	v1 := joint.Get(request.EndCell, rideEndTS)

	discount := d.discountFactor(tau, travelSeconds)
	score := expected + discount*v1 - v0

	if isNonFinite(score) || isNonFinite(v0) || isNonFinite(v1) {
		d.cfg.logger.Debug().
			Str("driver_id", driver.ID).Str("request_id", request.ID).
			Msg("dispatch: non-finite score, skipping candidate")
		return scoredCandidate{}, false
	}
	if score <= 0 {
		return scoredCandidate{}, false
	}

	return scoredCandidate{
		driverID:   driver.ID,
		requestID:  request.ID,
		driverCell: driver.Cell,
		endCell:    request.EndCell,
		score:      score,
		tau:        tau,
		rideEndTS:  rideEndTS,
	}, true
}

// discountFactor returns γ^τ (canonical, spec.md §4.5.2) unless
// WithRawGammaDiscount was set, in which case it returns γ directly
// (the documented alternative, spec.md §9 / SPEC_FULL.md §6 item 3).
func (d *Dispatcher) discountFactor(tau float64, travelSeconds float64) float64 {
	if d.cfg.rawGamma {
		_ = travelSeconds
		return d.cfg.gamma
	}
	return math.Pow(d.cfg.gamma, tau)
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
