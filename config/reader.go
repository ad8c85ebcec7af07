// Package config reads mount configurations from JSON or YAML files.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go.viam.com/sensormount/logging"
	"go.viam.com/sensormount/mount"
)

// ReadMountConfig reads a mount config from the given file. ${VAR} placeholders are replaced with
// environment values before the file is decoded.
func ReadMountConfig(filePath string, logger logging.Logger) (*mount.Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", filePath)
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a mount config from the given reader and specifies
// where, if applicable, the file the reader originated from. The extension of originalPath
// selects YAML (.yaml, .yml) or JSON (anything else).
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*mount.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	attrs := AttributeMap{}
	switch strings.ToLower(filepath.Ext(originalPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &attrs)
	default:
		err = json.Unmarshal(data, &attrs)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", originalPath)
	}

	cfg, err := TransformAttributeMap[*mount.Config](attrs)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode config %q", originalPath)
	}
	if err := cfg.Validate(originalPath); err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debugw("read mount config", "path", originalPath, "prefix", cfg.Prefix, "camera", cfg.IncludeCamera)
	}
	return cfg, nil
}

// ReadMountConfigs reads several config files, reporting every file that fails rather than only the first.
func ReadMountConfigs(filePaths []string, logger logging.Logger) ([]*mount.Config, error) {
	var (
		cfgs    []*mount.Config
		allErrs error
	)
	for _, p := range filePaths {
		cfg, err := ReadMountConfig(p, logger)
		if err != nil {
			allErrs = multierr.Append(allErrs, err)
			continue
		}
		cfgs = append(cfgs, cfg)
	}
	if allErrs != nil {
		return nil, allErrs
	}
	return cfgs, nil
}
