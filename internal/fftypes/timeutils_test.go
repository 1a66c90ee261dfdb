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

package fftypes

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type UTTimeTest struct {
	T1 *FFTime `json:"t1"`
	T2 *FFTime `json:"t2,omitempty"`
	T3 *FFTime `json:"t3,omitempty"`
	T4 *FFTime `json:"t4"`
	T5 *FFTime `json:"t5,omitempty"`
	T6 *FFTime `json:"t6,omitempty"`
	T7 *FFTime `json:"t7,omitempty"`
}

func TestFFTimeJSONSerialization(t *testing.T) {
	now := Now()
	zeroTime := ZeroTime()
	assert.True(t, time.Time(zeroTime).IsZero())
	t6 := UnixTime(1621103852123456789)
	t7 := UnixTime(1621103797)
	utTimeTest := &UTTimeTest{
		T1: nil,
		T2: nil,
		T3: &zeroTime,
		T4: &zeroTime,
		T5: now,
		T6: t6,
		T7: t7,
	}
	b, err := json.Marshal(&utTimeTest)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(
		`{"t1":null,"t3":null,"t4":null,"t5":"%s","t6":"2021-05-15T18:37:32.123456789Z","t7":"2021-05-15T18:36:37Z"}`,
		time.Time(*now).UTC().Format(time.RFC3339Nano)), string(b))

	var utTimeTest2 UTTimeTest
	err = json.Unmarshal(b, &utTimeTest2)
	assert.NoError(t, err)
	assert.Nil(t, utTimeTest2.T1)
	assert.Equal(t, now.UnixNano(), utTimeTest2.T5.UnixNano())
	assert.Equal(t, t6.UnixNano(), utTimeTest2.T6.UnixNano())
	assert.Equal(t, t7.UnixNano(), utTimeTest2.T7.UnixNano())
}

func TestFFTimeJSONUnmarshalFail(t *testing.T) {
	var utTimeTest UTTimeTest
	err := json.Unmarshal([]byte(`{"t1": "!Badness"}`), &utTimeTest)
	assert.Regexp(t, "EV10122", err.Error())
}

func TestFFTimeDatabaseSerialization(t *testing.T) {
	now := Now()

	var ft *FFTime
	v, err := ft.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, int64(0), ft.UnixNano())
	assert.True(t, ft.Time().IsZero())

	ft = now
	v, err = ft.Value()
	assert.NoError(t, err)
	assert.Equal(t, now.UnixNano(), v)

	ft = UnixTime(1621103797)
	v, err = ft.Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(1621103797000000000), v)
}

func TestStringNillOrZero(t *testing.T) {
	var ft *FFTime
	assert.Equal(t, "", ft.String())
	zero := ZeroTime()
	ft = &zero
	assert.Equal(t, "", ft.String())
}

func TestFFTimeScan(t *testing.T) {
	var ft FFTime
	assert.NoError(t, ft.Scan(nil))
	assert.True(t, time.Time(ft).IsZero())

	assert.NoError(t, ft.Scan("2021-05-15T18:37:32.123456789Z"))
	assert.Equal(t, int64(1621103852123456789), ft.UnixNano())

	assert.NoError(t, ft.Scan(int64(1621103797)))
	assert.Equal(t, int64(1621103797000000000), ft.UnixNano())

	assert.NoError(t, ft.Scan(int64(0)))
	assert.Regexp(t, "EV10122", ft.Scan("bad"))
	assert.Regexp(t, "EV10125", ft.Scan(false))
}
