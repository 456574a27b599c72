package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/compositehash/src/verify"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	envPrefix = "HASHCHECK"
)

var ErrInvalidConfig = errors.New("invalid config")

type EnvVars struct {
	Environment      string  `envconfig:"ENVIRONMENT" default:"dev"`
	Seed             uint64  `envconfig:"SEED" default:"42"`
	Buckets          uint64  `envconfig:"BUCKETS" default:"2053"`
	BucketSize       uint64  `envconfig:"BUCKET_SIZE" default:"50"`
	CriticalValue    float64 `envconfig:"CRITICAL_VALUE" default:"2158.4981036918693"`
	PurityIterations int     `envconfig:"PURITY_ITERATIONS" default:"100"`
	Primitives       string  `envconfig:"PRIMITIVES" default:"xxhash"`
	ReportPath       string  `envconfig:"REPORT_PATH"`
}

func (e EnvVars) Options() verify.Options {
	return verify.Options{
		Seed:             e.Seed,
		Buckets:          e.Buckets,
		BucketSize:       e.BucketSize,
		CriticalValue:    e.CriticalValue,
		PurityIterations: e.PurityIterations,
	}
}

func (e EnvVars) validate() error {
	if e.Environment != EnvDev && e.Environment != EnvProd {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, e.Environment)
	}

	if err := e.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// loadEnv reads dotenvPath when it exists and then the process environment.
// Variables already set in the environment win over the file.
func loadEnv(dotenvPath string) (EnvVars, error) {
	var e EnvVars

	if dotenvPath != "" {
		err := godotenv.Load(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return e, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	if err := envconfig.Process(envPrefix, &e); err != nil {
		return e, fmt.Errorf("failed to process env: %w", err)
	}

	return e, nil
}
