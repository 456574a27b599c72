package verify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Blackdeer1524/compositehash/src/pkg/hashing"
	"github.com/Blackdeer1524/compositehash/src/person"
)

func defaultSuite(opts Options) *Suite {
	return NewSuite(person.NewPersonHasher(hashing.XXHash{}), opts)
}

func TestSuite_Smoke(t *testing.T) {
	_, err := defaultSuite(DefaultOptions()).Smoke(context.Background())
	require.NoError(t, err)
}

func TestSuite_Purity(t *testing.T) {
	_, err := defaultSuite(DefaultOptions()).Purity(context.Background())
	require.NoError(t, err)
}

func TestSuite_Distribution(t *testing.T) {
	opts := DefaultOptions()

	metrics, err := defaultSuite(opts).Distribution(context.Background())
	require.NoError(t, err)
	assert.Less(t, metrics[MetricPearson], opts.CriticalValue)
	assert.Equal(t, float64(2053*50), metrics[MetricPeople])
}

// A constant hasher sends everyone to one bucket.
func TestSuite_Distribution_DetectsClustering(t *testing.T) {
	prims := new(constPrimitives)
	s := NewSuite(person.NewPersonHasher(prims), DefaultOptions())

	metrics, err := s.Distribution(context.Background())
	require.ErrorIs(t, err, ErrAssertion)
	assert.Greater(t, metrics[MetricPearson], DefaultOptions().CriticalValue)
}

func TestSuite_Distribution_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := defaultSuite(DefaultOptions()).Distribution(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSuite_Sensitivity(t *testing.T) {
	_, err := defaultSuite(DefaultOptions()).Sensitivity(context.Background())
	require.NoError(t, err)

	// constant primitives make every swap collide
	prims := new(constPrimitives)
	_, err = NewSuite(person.NewPersonHasher(prims), DefaultOptions()).
		Sensitivity(context.Background())
	require.ErrorIs(t, err, ErrAssertion)
}

// The address swap is hashed with the backend of the person hasher under
// check, so a degenerate backend is caught by the address comparison too.
func TestSuite_SensitivityChecksConfiguredAddressBackend(t *testing.T) {
	prims := new(constPrimitives)
	_, err := NewSuite(person.NewPersonHasher(prims), DefaultOptions()).
		Sensitivity(context.Background())

	var aerr *AssertionError
	require.ErrorAs(t, err, &aerr)
	require.True(t, strings.HasPrefix(aerr.Hint, John.Address.String()+" and "), aerr.Hint)
}

func TestSuite_Distribution_RejectsOversizedWorkload(t *testing.T) {
	opts := DefaultOptions()
	opts.Buckets = 1 << 32

	_, err := defaultSuite(opts).Distribution(context.Background())
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSuite_Consistency(t *testing.T) {
	_, err := defaultSuite(DefaultOptions()).Consistency(context.Background())
	require.NoError(t, err)
}

func TestSuite_RunAll(t *testing.T) {
	r := NewRunner(zaptest.NewLogger(t).Sugar())
	defaultSuite(DefaultOptions()).Register(r)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Passed())

	names := make([]string, 0, len(report.Results))
	for _, res := range report.Results {
		names = append(names, res.Name)
	}
	require.Equal(t, []string{
		CheckSmoke,
		CheckPurity,
		CheckDistribution,
		CheckSensitivity,
		CheckConsistency,
	}, names)
}

type constPrimitives struct{}

func (constPrimitives) String(string) uint64   { return 1 }
func (constPrimitives) Int(int) uint64         { return 1 }
func (constPrimitives) Float64(float64) uint64 { return 1 }
