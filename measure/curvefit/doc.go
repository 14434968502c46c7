// Package curvefit fits polynomial models to sampled diatomic
// potential-energy curves and expands them about the true minimum.
//
// The pipeline mirrors the classic preprocessing step of a Dunham analysis:
//
//   - shift positions to the lowest-energy sample for conditioning
//   - degree-n ordinary least-squares polynomial fit
//   - locate the true minimum as a real root of the derivative inside the
//     (slightly padded) sampled domain
//   - expand the model as Taylor coefficients about that minimum
//
// # Usage
//
// Fit a sampled curve and hand the expansion to a downstream analysis:
//
//	res, err := curvefit.Fit(positions, energies, curvefit.Config{Order: 6})
//	if err != nil {
//	    // underdetermined or malformed input
//	}
//	if !res.MinimumFound {
//	    // monotonic or edge-dominated curve; res.Re falls back to the
//	    // lowest sample and the Taylor terms are zeroed
//	}
//
// A strictly monotonic curve has no interior critical point; this is a
// normal, reportable outcome (Result.MinimumFound == false), not an error.
package curvefit
