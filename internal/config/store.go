package config

type StoreConfig struct {
	DataDir string `yaml:"data_dir"`
}

func loadStoreConfig() *StoreConfig {
	return &StoreConfig{
		DataDir: getEnv("STORE_DATA_DIR", "./data"),
	}
}
