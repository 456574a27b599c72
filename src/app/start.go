package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/compositehash/src"
	"github.com/Blackdeer1524/compositehash/src/pkg/hashing"
	"github.com/Blackdeer1524/compositehash/src/pkg/utils"
	"github.com/Blackdeer1524/compositehash/src/person"
	"github.com/Blackdeer1524/compositehash/src/report"
	"github.com/Blackdeer1524/compositehash/src/verify"
)

// Entrypoint wires configuration, logging and the verification suite.
// DotenvPath, Fs and Override are read by Init; Env is filled by it.
type Entrypoint struct {
	DotenvPath string
	Env        EnvVars
	Fs         afero.Fs

	// Override mutates the loaded env, e.g. to apply command line flags.
	Override func(*EnvVars)

	log    src.Logger
	runner *verify.Runner
	hasher person.PersonHasher
}

func (e *Entrypoint) Init(_ context.Context) error {
	env, err := loadEnv(e.DotenvPath)
	if err != nil {
		return err
	}
	if e.Override != nil {
		e.Override(&env)
	}
	if err := env.validate(); err != nil {
		return err
	}
	e.Env = env

	if e.log == nil {
		if e.Env.Environment == EnvDev {
			e.log = utils.Must(zap.NewDevelopment()).Sugar()
		} else {
			e.log = utils.Must(zap.NewProduction()).Sugar()
		}
	}

	if e.Fs == nil {
		e.Fs = afero.NewOsFs()
	}

	prims, err := hashing.ByName(e.Env.Primitives)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	e.hasher = person.NewPersonHasher(prims)
	e.runner = verify.NewRunner(e.log)
	verify.NewSuite(e.hasher, e.Env.Options()).Register(e.runner)

	e.log.Debugf("initialized with %s primitives, seed %d", e.Env.Primitives, e.Env.Seed)

	return nil
}

// Hasher returns the person hasher selected by the configuration.
func (e *Entrypoint) Hasher() person.PersonHasher {
	return e.hasher
}

// Run executes the suite and writes the report when a path is configured.
// The report is returned even when checks fail.
func (e *Entrypoint) Run(ctx context.Context) (verify.Report, error) {
	rep, runErr := e.runner.Run(ctx)

	if e.Env.ReportPath != "" {
		if err := report.Write(e.Fs, e.Env.ReportPath, rep); err != nil {
			return rep, errors.Join(runErr, fmt.Errorf("failed to write report: %w", err))
		}
		e.log.Infof("report written to %s", e.Env.ReportPath)
	}

	return rep, runErr
}

func (e *Entrypoint) Close() (err error) {
	if e.log == nil {
		return nil
	}

	// zap returns EINVAL/ENOTTY when syncing a terminal; nothing was lost.
	if syncErr := e.log.Sync(); syncErr != nil && !isTerminalSyncErr(syncErr) {
		err = syncErr
	}

	return err
}
