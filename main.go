//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package main is a command line tool to inspect and change the properties of the Oracle client binding.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"spheric.cloud/xiter"

	"github.com/apstndb/ociprops/enums"
	"github.com/apstndb/ociprops/internal/oci"
	"github.com/apstndb/ociprops/internal/parser"
	"github.com/apstndb/ociprops/internal/properties"
)

type globalOptions struct {
	Properties propertiesOptions `group:"ociprops"`
}

// We can't use `default` because ociprops uses multiple flags.NewParser() to process config files and flags.
type propertiesOptions struct {
	ClientVersion *string           `long:"client-version" env:"OCIPROPS_CLIENT_VERSION" description:"Oracle client version to assume, e.g. 11.2.0.4.0" default-mask:"19.0.0.0.0"`
	DSN           string            `long:"dsn" env:"OCIPROPS_DSN" description:"Detect the Oracle client version by connecting to this data source with godror."`
	Set           map[string]string `long:"set" key-value-delimiter:"=" description:"Set properties e.g. --set=statement_cache_size=20 --set=length_semantics=CHAR"`
	Get           string            `long:"get" description:"Print the value of a single property."`
	Format        *string           `long:"format" description:"Output format (TABLE|YAML|JSON)" default-mask:"TABLE"`
	LogLevel      *string           `long:"log-level" description:"Log level (DEBUG|INFO|WARN|ERROR)" default-mask:"WARN"`
	LogNative     bool              `long:"log-native" description:"Trace native client calls."`
	Help          bool              `long:"help" short:"h" hidden:"true"`
}

const (
	defaultClientVersion = "19.0.0.0.0"
	defaultFormat        = "TABLE"
	defaultLogLevel      = "WARN"
)

var errHelp = errors.New("help requested")

func main() {
	err := run(context.Background(), afero.NewOsFs(), configFiles(), os.Args[1:], os.Stdout, os.Stderr)

	var exitCodeErr *ExitCodeError
	if err != nil && !errors.As(err, &exitCodeErr) {
		color.New(color.FgRed).Fprintf(os.Stderr, "ERROR: %v\n", err)
	}
	os.Exit(GetExitCode(err))
}

func run(ctx context.Context, fs afero.Fs, cnfFiles []string, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(fs, cnfFiles, args, stderr)
	if errors.Is(err, errHelp) {
		return nil
	} else if err != nil {
		return err
	}

	if err := setUpLogger(lo.FromPtrOr(opts.LogLevel, defaultLogLevel), stderr); err != nil {
		return err
	}

	format, err := enums.OutputFormatString(lo.FromPtrOr(opts.Format, defaultFormat))
	if err != nil {
		return fmt.Errorf("invalid value of --format: %w", err)
	}

	client, err := newClient(ctx, opts)
	if err != nil {
		return err
	}

	reg, err := properties.Init(client)
	if err != nil {
		return err
	}
	slog.Debug("properties initialized", "clientVersion", reg.ClientVersion())

	if err := applySets(reg, opts.Set); err != nil {
		return err
	}

	if opts.Get != "" {
		v, err := reg.Get(properties.Name(opts.Get))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, formatValue(v))
		return err
	}

	return writeProperties(stdout, reg, format)
}

func parseOptions(fs afero.Fs, cnfFiles []string, args []string, stderr io.Writer) (propertiesOptions, error) {
	var gopts globalOptions

	// process config files at first
	configFileParser := flags.NewParser(&gopts, flags.None)
	if err := readConfigFile(fs, configFileParser, cnfFiles); err != nil {
		return propertiesOptions{}, fmt.Errorf("invalid config file format: %w", err)
	}

	// then, process environment variables and command line options
	// use another parser to process environment variables with higher precedence than configuration files
	flagParser := flags.NewParser(&gopts, flags.PassDoubleDash)

	// A separate parser keeps config file values out of the help output.
	parserForHelp := flags.NewParser(&globalOptions{}, flags.Default)

	rest, err := flagParser.ParseArgs(args)
	switch {
	case err != nil:
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)
		parserForHelp.WriteHelp(stderr)
		return propertiesOptions{}, NewExitCodeError(exitCodeUsage)
	case len(rest) > 0:
		fmt.Fprintf(stderr, "Unexpected arguments: %v\n", strings.Join(rest, " "))
		parserForHelp.WriteHelp(stderr)
		return propertiesOptions{}, NewExitCodeError(exitCodeUsage)
	case gopts.Properties.Help:
		parserForHelp.WriteHelp(stderr)
		return propertiesOptions{}, errHelp
	}

	// command line options override config files
	opts := gopts.Properties
	dsnSet := flagParser.FindOptionByLongName("dsn").IsSet()
	versionSet := flagParser.FindOptionByLongName("client-version").IsSet()
	switch {
	case dsnSet && versionSet:
		return propertiesOptions{}, errors.New("invalid parameters: --dsn and --client-version are mutually exclusive")
	case dsnSet:
		opts.ClientVersion = nil
	case versionSet:
		opts.DSN = ""
	case opts.DSN != "" && opts.ClientVersion != nil:
		return propertiesOptions{}, errors.New("invalid config file: dsn and client-version are mutually exclusive")
	}
	return opts, nil
}

func setUpLogger(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid value of --log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})))
	return nil
}

func newClient(ctx context.Context, opts propertiesOptions) (*oci.StaticClient, error) {
	logger, err := newNativeLogger(opts.LogNative)
	if err != nil {
		return nil, fmt.Errorf("failed to build native logger: %w", err)
	}

	var version properties.Version
	if opts.DSN != "" {
		version, err = oci.DetectClientVersion(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
	} else {
		version, err = properties.ParseVersion(lo.FromPtrOr(opts.ClientVersion, defaultClientVersion))
		if err != nil {
			return nil, fmt.Errorf("invalid value of --client-version: %w", err)
		}
	}

	return oci.NewStaticClient(version, oci.WithLogger(logger)), nil
}

func newNativeLogger(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	zapDevelopmentConfig := zap.NewDevelopmentConfig()
	zapDevelopmentConfig.DisableCaller = true
	return zapDevelopmentConfig.Build()
}

// applySets applies --set values in name order so failures are deterministic.
func applySets(reg *properties.Registry, sets map[string]string) error {
	sets = maps.Collect(xiter.MapKeys(maps.All(sets), strings.ToLower))

	for _, k := range slices.Sorted(maps.Keys(sets)) {
		v := sets[k]
		if err := reg.Set(properties.Name(k), parser.ParseLiteral(v)); err != nil {
			return fmt.Errorf("failed to set property. name: %v, value: %v, err: %w", k, v, err)
		}
	}
	return nil
}

const cnfFileName = ".ociprops.cnf"

func configFiles() []string {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	return append(cnfFiles, filepath.Join(cwd, cnfFileName))
}

func readConfigFile(fs afero.Fs, parser *flags.Parser, cnfFiles []string) error {
	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := fs.Stat(cnfFile); err != nil {
			continue
		}
		if err := parseConfigFile(fs, iniParser, cnfFile); err != nil {
			return err
		}
	}

	return nil
}

func parseConfigFile(fs afero.Fs, iniParser *flags.IniParser, cnfFile string) error {
	f, err := fs.Open(cnfFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := iniParser.Parse(f); err != nil {
		return fmt.Errorf("%s: %w", cnfFile, err)
	}
	return nil
}
