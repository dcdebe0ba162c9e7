package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Names of the collectors registered by NewKeyGen.
const (
	CandidatesName = namespace + "_" + subsystem + "_candidates_total"
	RejectedName   = namespace + "_" + subsystem + "_rejected_total"
	KeysName       = namespace + "_" + subsystem + "_keys_total"
)

// Sum gathers from g and returns the sum over all label values of the counter
// family called name. A family that has not been observed yet sums to zero.
func Sum(g prometheus.Gatherer, name string) (float64, error) {
	families, err := g.Gather()
	if err != nil {
		return 0, errors.Wrap(err, "gather metrics")
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		if mf.GetType() != dto.MetricType_COUNTER {
			return 0, errors.Errorf("%s is not a counter", name)
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
