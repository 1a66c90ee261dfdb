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
	"syscall"
	"testing"

	"github.com/kaleido-io/emissionsledger/mocks/apiservermocks"
	"github.com/kaleido-io/emissionsledger/mocks/enginemocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const configFile = "../test/config/emissionsledger.core.yaml"

func useMocks(t *testing.T) (*enginemocks.Engine, *apiservermocks.Server) {
	e := &enginemocks.Engine{}
	as := &apiservermocks.Server{}
	_utEngine = e
	_utAPIServer = as
	cfgFile = configFile
	t.Cleanup(func() {
		_utEngine = nil
		_utAPIServer = nil
		cfgFile = ""
	})
	return e, as
}

func TestGetEngine(t *testing.T) {
	assert.NotNil(t, getEngine())
	assert.NotNil(t, getAPIServer())
}

func TestExecMissingConfig(t *testing.T) {
	useMocks(t)
	rootCmd.SetArgs([]string{"-f", "../test/config/no.such.yaml"})
	defer rootCmd.SetArgs([]string{})
	err := Execute()
	assert.Regexp(t, "EV10101", err)
}

func TestShowConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"showconf", "-f", configFile})
	defer rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestShowConfigMissing(t *testing.T) {
	rootCmd.SetArgs([]string{"showconf", "-f", "../test/config/no.such.yaml"})
	defer rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	assert.Regexp(t, "EV10101", err)
}

func TestExecEngineInitFail(t *testing.T) {
	e, _ := useMocks(t)
	e.On("Init", mock.Anything).Return(fmt.Errorf("splutter"))
	err := run()
	assert.Regexp(t, "splutter", err)
}

func TestExecEngineStartFail(t *testing.T) {
	e, _ := useMocks(t)
	e.On("Init", mock.Anything).Return(nil)
	e.On("Start").Return(fmt.Errorf("bang"))
	e.On("Close").Return()
	err := run()
	assert.Regexp(t, "bang", err)
	e.AssertExpectations(t)
}

func TestExecServeFail(t *testing.T) {
	e, as := useMocks(t)
	e.On("Init", mock.Anything).Return(nil)
	e.On("Start").Return(nil)
	e.On("Close").Return()
	as.On("Serve", mock.Anything, e).Return(fmt.Errorf("pop"))
	err := run()
	assert.Regexp(t, "pop", err)
	e.AssertExpectations(t)
}

func TestExecOkExitSIGINT(t *testing.T) {
	e, as := useMocks(t)
	e.On("Init", mock.Anything).Return(nil)
	e.On("Start").Return(nil)
	e.On("Close").Return()
	as.On("Serve", mock.Anything, e).Return(nil).Run(func(args mock.Arguments) {
		<-args[0].(context.Context).Done()
	})

	go func() {
		sigs <- syscall.SIGINT
	}()
	err := run()
	assert.NoError(t, err)
	e.AssertExpectations(t)
}
