package types

// Config holds the parameters for opening a gameshelf store.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
	LogFile string `json:"log_file" yaml:"log_file"`
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
