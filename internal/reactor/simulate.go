package reactor

import "fmt"

// Simulate integrates the three reactor balances with explicit Euler steps
// over n uniformly spaced samples from t=0 to TFinal.
//
// Updates are sequential within a step: C2 uses the freshly computed C1,
// while C3 uses C2 from the previous step. Flows are not re-validated here.
func Simulate(p Params, n int) (*Trajectory, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if err := CheckInputs(p); err != nil {
		return nil, err
	}

	g, q, feed := p.Geometry, p.Flows, p.Feed
	dt := p.Step(n)

	tr := newTrajectory(n)
	tr.C1[0] = p.Initial.C1
	tr.C2[0] = p.Initial.C2
	tr.C3[0] = p.Initial.C3

	c1, c2, c3 := tr.C1, tr.C2, tr.C3
	for i := 1; i < n; i++ {
		c1[i] = c1[i-1] + ((q.Q01*feed.C01+q.Q31*c3[i-1]-q.Q12*c1[i-1])/g.V1)*dt
		c2[i] = c2[i-1] + ((q.Q12*c1[i]-q.Q23*c2[i-1])/g.V2)*dt
		c3[i] = c3[i-1] + ((q.Q03*feed.C03+q.Q23*c2[i-1]-q.Q31*c3[i-1]+q.Q33*c3[i-1])/g.V3)*dt
		tr.Times[i] = tr.Times[i-1] + dt
	}

	return tr, nil
}
