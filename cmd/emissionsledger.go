// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaleido-io/emissionsledger/internal/apiserver"
	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/engine"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "emissionsledger",
	Short: "Emissions file verification ledger",
	Long: `Validates mapped emissions files against their schema rules, signs a verification
record with a KERI-style identifier, and anchors the record hash on a ledger`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var showConfigCommand = &cobra.Command{
	Use:     "showconfig",
	Aliases: []string{"showconf"},
	Short:   "List out the configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ReadConfig(cfgFile); err != nil {
			return i18n.WrapError(context.Background(), err, i18n.MsgConfigFailed, err)
		}
		apiserver.InitConfig()
		_ = engine.NewEngine()
		b, err := yaml.Marshal(viper.AllSettings())
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(showConfigCommand)
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

var _utEngine engine.Engine
var _utAPIServer apiserver.Server

func getEngine() engine.Engine {
	if _utEngine != nil {
		return _utEngine
	}
	return engine.NewEngine()
}

func getAPIServer() apiserver.Server {
	if _utAPIServer != nil {
		return _utAPIServer
	}
	return apiserver.NewAPIServer()
}

func startDebugListener(ctx context.Context) {
	debugPort := config.GetInt(config.DebugPort)
	if debugPort > 0 {
		go func() {
			log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d: %s", debugPort, http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil))
		}()
	}
}

func run() error {

	// Read the configuration first of all
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	config.SetupLogging(ctx)
	log.L(ctx).Infof("Emissions Ledger")
	log.L(ctx).Infof("© Copyright 2022 Kaleido, Inc.")

	// Deferred error return from reading config
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, err)
	}

	// Plugin and listener defaults are registered against the loaded config
	apiserver.InitConfig()
	startDebugListener(ctx)

	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	e := getEngine()
	if err := e.Init(ctx); err != nil {
		return err
	}
	defer e.Close()
	if err := e.Start(); err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- getAPIServer().Serve(ctx, e)
	}()

	select {
	case sig := <-sigs:
		log.L(ctx).Infof("Shutting down due to %s", sig.String())
		cancelCtx()
		return <-errChan
	case err := <-errChan:
		log.L(ctx).Errorf("API server exited: %s", err)
		return err
	}
}
