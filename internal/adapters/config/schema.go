package config

// Rpnfile represents the structure of the rpn.yaml configuration file.
// Pointer fields distinguish "unset" from the zero value.
type Rpnfile struct {
	Version  string `yaml:"version"`
	Workers  *int   `yaml:"workers"`
	Validate *bool  `yaml:"validate"`
	Timeout  string `yaml:"timeout"`
}
