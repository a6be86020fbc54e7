package config

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port              int
	RoundRobinQuantum int
	CFSQuantum        int
	SweepLevels       []int
	SweepSeed         uint64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// A missing file is fine; every key has a default.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 4)
		viper.SetDefault("scheduler.cfs.time_quantum", 4)
		viper.SetDefault("sweep.levels", []int{5, 10, 15, 20, 25, 30})
		viper.SetDefault("sweep.seed", 42)

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{
			Port:              viper.GetInt("port"),
			RoundRobinQuantum: viper.GetInt("scheduler.round_robin.time_quantum"),
			CFSQuantum:        viper.GetInt("scheduler.cfs.time_quantum"),
			SweepLevels:       viper.GetIntSlice("sweep.levels"),
			SweepSeed:         viper.GetUint64("sweep.seed"),
		}
	})

	return config
}
