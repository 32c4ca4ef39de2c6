package config

// Config represents the full tasg configuration
type Config struct {
	// DataFile is the path to the task store file
	DataFile string `yaml:"data_file" mapstructure:"data_file"`
}
