package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/codegen"
	"github.com/aki/remocode/internal/core/config"
	"github.com/aki/remocode/internal/core/logger"
	"github.com/aki/remocode/internal/core/record"
)

// env is the resolved state every generating command works from
type env struct {
	cfg         *config.Config
	recordsPath string
	log         logger.Logger
}

// loadEnv resolves configuration, records path, logger and output format.
// Outside a project the defaults apply and --records (or REMOCODE_RECORDS) is required.
// A relative --records or REMOCODE_RECORDS is relative to the working
// directory; only the config file's records.path is relative to the project root.
func loadEnv() (*env, error) {
	log, err := CreateLogger()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	recordsPath := ""

	if root, err := config.FindProjectRoot(); err == nil {
		mgr := config.NewManager(root)
		cfg, err = mgr.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		recordsPath = mgr.ResolveRecordsPath(cfg)
		log.Debug("using project configuration", "path", mgr.GetConfigPath())
	} else {
		if err := config.ApplyEnv(cfg); err != nil {
			return nil, err
		}
		if os.Getenv(config.EnvRecords) != "" {
			recordsPath = cfg.Records.Path
		}
	}

	if flagRecords != "" {
		recordsPath = flagRecords
	}
	if recordsPath == "" {
		return nil, fmt.Errorf("no record snapshot: pass --records or run 'remocode init'")
	}

	if err := applyOutputFormat(cfg); err != nil {
		return nil, err
	}

	return &env{
		cfg:         cfg,
		recordsPath: recordsPath,
		log:         log.With("records", recordsPath),
	}, nil
}

// applyOutputFormat picks --format over the configured output format
func applyOutputFormat(cfg *config.Config) error {
	name := cfg.Output.Format
	if flagFormat != "" {
		name = flagFormat
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return err
	}
	return ui.SetGlobalFormatter(format)
}

// format returns the format for kind with the configured start letter applied
func (e *env) format(kind codegen.Kind) (codegen.Format, error) {
	f, err := codegen.FormatFor(kind)
	if err != nil {
		return codegen.Format{}, err
	}

	var start string
	switch kind {
	case codegen.KindRemoval:
		start = e.cfg.Formats.Removal.Start
	case codegen.KindContract:
		start = e.cfg.Formats.Contract.Start
	}
	if start == "" || start[0] == f.Start {
		return f, nil
	}
	return f.WithStart(start[0])
}

// snapshot loads the record snapshot under a shared lock
func (e *env) snapshot(ctx context.Context) (*record.Snapshot, error) {
	timeout, err := e.cfg.GetLockTimeout()
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx, e.log)

	reader := record.NewReader(record.WithLockTimeout(timeout))
	snap, err := reader.Load(ctx, e.recordsPath)
	if err != nil {
		return nil, err
	}
	if snap.Missing {
		e.log.Warn("record snapshot not found, generating first codes")
	}
	return snap, nil
}

// parseKinds converts arguments to kinds; no arguments means all kinds
func parseKinds(args []string) ([]codegen.Kind, error) {
	if len(args) == 0 {
		return codegen.Kinds(), nil
	}
	kinds := make([]codegen.Kind, 0, len(args))
	for _, a := range args {
		k, err := codegen.ParseKind(a)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
