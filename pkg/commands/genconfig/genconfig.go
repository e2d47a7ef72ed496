package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fsimage/pkg/commands/internal"
	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/logging"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	// ConfigFile is an explicit config file; empty uses the default lookup
	ConfigFile string
	// Template outputs the commented-out defaults instead of the effective
	// configuration
	Template bool
	// Write saves the template to Path instead of returning it only
	Write bool
	// Path is where Write saves; empty means the default config file location
	Path string
}

// GenConfigResult holds the rendered configuration
type GenConfigResult struct {
	ConfigContent string
	FileWritten   string
}

// GenConfig renders the effective configuration or the config file template,
// optionally writing the template out
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if !opts.Template && !opts.Write {
		session, err := internal.Open(opts.ConfigFile, nil, nil)
		if err != nil {
			return nil, err
		}
		content, err := config.Marshal(session.Config)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("source", session.Config.Source).Msg("Outputting effective config")
		return &GenConfigResult{ConfigContent: string(content)}, nil
	}

	result := &GenConfigResult{ConfigContent: config.Template()}
	if !opts.Write {
		return result, nil
	}

	targetPath := opts.Path
	if targetPath == "" {
		targetPath = config.DefaultFilePath()
	}
	logger.Info().Str("path", targetPath).Msg("Writing config file")

	if _, err := os.Stat(targetPath); err == nil {
		return result, errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", targetPath).
			WithDetail("file", targetPath)
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", targetPath).
			WithDetail("file", targetPath)
	}
	if err := os.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to write config to %s", targetPath).
			WithDetail("file", targetPath)
	}

	result.FileWritten = targetPath
	logger.Info().Str("path", targetPath).Msg("Written config file")
	return result, nil
}
