package reactor

func balancedParams() Params {
	return Params{
		Geometry: Geometry{V1: 10, V2: 10, V3: 10},
		Flows:    FlowRates{Q01: 5, Q03: 5, Q12: 10, Q23: 10, Q31: 5, Q33: 10},
		Feed:     Feed{C01: 1, C03: 1},
		Initial:  Initial{},
		Horizon:  Horizon{TFinal: 10},
	}
}
