// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can run the
// server: signing key, token lifetime, database, image storage and the
// listen address.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.AuthRateLimit <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validateStorage checks the database and image storage settings.
func (cfg *StructuredConfig) validateStorage() error {
	if cfg.App.PasswordMinLength <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	images := cfg.Storage.Images
	if images.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidStorageConfigs)
	}

	switch images.Backend {
	case ImagesBackendLocal:
		if images.MediaRoot == "" {
			return fmt.Errorf("%w: media root is required for the local backend", ErrInvalidStorageConfigs)
		}
	case ImagesBackendS3:
		if images.S3.Bucket == "" || images.S3.Region == "" {
			return fmt.Errorf("%w: bucket and region are required for the s3 backend", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown image backend %q", ErrInvalidStorageConfigs, images.Backend)
	}

	return nil
}

// validateAdapter checks the API client settings.
func (cfg *StructuredConfig) validateAdapter() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
