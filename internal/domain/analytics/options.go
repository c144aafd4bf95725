package analytics

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRetentionThreshold sets the retention threshold in months.
func WithRetentionThreshold(months float64) Option {
	return func(e *Engine) {
		if months > 0 {
			e.retentionThresholdMonths = months
		}
	}
}

// WithBaseCostPerHire sets the flat hiring cost per person.
func WithBaseCostPerHire(cost float64) Option {
	return func(e *Engine) {
		if cost >= 0 {
			e.baseCostPerHire = cost
		}
	}
}

// WithTrainingCostPerPerson sets the training spend per person.
func WithTrainingCostPerPerson(cost float64) Option {
	return func(e *Engine) {
		if cost >= 0 {
			e.trainingCostPerPerson = cost
		}
	}
}
