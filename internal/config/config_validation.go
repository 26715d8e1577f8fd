// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// All violations are reported together via [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.DefaultTokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidPasswordHashCost)
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	switch {
	case dsn == "memory":
		return true
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return true
	case strings.HasPrefix(dsn, "sqlite://"):
		return len(dsn) > len("sqlite://")
	default:
		return false
	}
}
