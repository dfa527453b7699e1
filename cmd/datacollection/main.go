// Command datacollection runs the data collection chaincode,
// either connected to a peer or as an external chaincode service.
package main

import (
	"fmt"
	"os"

	"datacollection/manager"
	"datacollection/manager/log"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %s\n", err)
		os.Exit(1)
	}
	// run flushes the logger before returning, os.Exit skips defers
	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg Config) error {
	cc := new(manager.DataCollectionChaincode)
	cc.ConfigureChaincode(cfg.DevLogging)
	defer log.Sync()

	if cfg.ServerAddress == "" {
		log.Info("starting data collection chaincode")
		if err := shim.Start(cc); err != nil {
			log.Errorf("error starting chaincode : %s", err.Error())
			return err
		}
		return nil
	}

	server := &shim.ChaincodeServer{
		CCID:    cfg.ChaincodeID,
		Address: cfg.ServerAddress,
		CC:      cc,
		TLSProps: shim.TLSProperties{
			Disabled: true,
		},
	}
	log.Infof("starting data collection chaincode server on %s", cfg.ServerAddress)
	if err := server.Start(); err != nil {
		log.Errorf("error starting chaincode server : %s", err.Error())
		return err
	}
	return nil
}
