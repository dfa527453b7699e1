package main

import (
	"github.com/spf13/viper"
)

// Config : process level settings, read from DATACOLLECTION_* environment
type Config struct {
	// ChaincodeID : package id, required when running as chaincode server
	ChaincodeID string `mapstructure:"chaincode_id"`
	// ServerAddress : listen address of external chaincode server,
	// empty = connect to peer with shim.Start
	ServerAddress string `mapstructure:"chaincode_server_address"`
	DevLogging    bool   `mapstructure:"dev_logging"`
}

func loadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DATACOLLECTION")
	v.AutomaticEnv()
	v.SetDefault("chaincode_id", "")
	v.SetDefault("chaincode_server_address", "")
	v.SetDefault("dev_logging", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
