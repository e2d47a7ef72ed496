package config

// Config is the effective fsimage configuration
type Config struct {
	// Root is the directory image paths are resolved against
	Root     string                  `koanf:"root" toml:"root"`
	Evaluate EvaluateConfig          `koanf:"evaluate" toml:"evaluate"`
	Output   OutputConfig            `koanf:"output" toml:"output"`
	Modules  map[string]ModuleConfig `koanf:"modules" toml:"modules"`
	// Queries maps a query name to its expression text
	Queries map[string]string `koanf:"queries" toml:"queries,omitempty"`

	// Source is the config file that was loaded, empty when none was
	Source string `koanf:"-" toml:"-"`
}

// EvaluateConfig holds the strictness flags of the expression evaluator
type EvaluateConfig struct {
	AllowDuplicateAddition     bool `koanf:"allow_duplicate_addition" toml:"allow_duplicate_addition"`
	AllowNonpresentSubtraction bool `koanf:"allow_nonpresent_subtraction" toml:"allow_nonpresent_subtraction"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// ModuleConfig declares one backup module. Which fields apply depends on Kind.
type ModuleConfig struct {
	Kind        string `koanf:"kind" toml:"kind"`
	Description string `koanf:"description" toml:"description,omitempty"`
	// Paths lists absolute paths (paths)
	Paths []string `koanf:"paths" toml:"paths,omitempty"`
	// File is a path list file (listfile)
	File string `koanf:"file" toml:"file,omitempty"`
	// Database is a package database file (packagedb)
	Database string `koanf:"database" toml:"database,omitempty"`
	// Packages restricts which database packages count (packagedb)
	Packages []string `koanf:"packages" toml:"packages,omitempty"`
}

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"auto", "term", "text", "json", "yaml"}
