package datagen

// Default generation parameters.
const (
	DefaultCohortSize = 30
	DefaultSeed       = 42
)

// Config controls synthetic dataset generation.
type Config struct {
	// CohortSize is the number of records generated per cohort.
	CohortSize int

	// Seed drives the random source. The same seed always yields the
	// same dataset.
	Seed int64

	// OutputFile is the CSV destination path.
	OutputFile string
}
