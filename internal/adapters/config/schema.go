package config

// Grindfile represents the structure of the grind.yaml configuration file.
// Every field is optional; absent fields keep their built-in defaults.
type Grindfile struct {
	Compiler *ToolDTO `yaml:"compiler"`
	Checker  *ToolDTO `yaml:"checker"`
	LdFlags  []string `yaml:"ldflags"`
	Sources  []string `yaml:"sources"`
	Artifact string   `yaml:"artifact"`
	RunArgs  []string `yaml:"runArgs"`
}

// ToolDTO represents an external tool definition in the configuration.
type ToolDTO struct {
	Path  string   `yaml:"path"`
	Flags []string `yaml:"flags"`
}
