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

package retry

import (
	"context"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/kaleido-io/emissionsledger/internal/log"
)

const (
	DefaultFactor = 2.0
)

// Retry is a concurrency safe exponential backoff. A zero MaxAttempts retries
// until the context is done.
type Retry struct {
	InitialDelay time.Duration
	MaximumDelay time.Duration
	Factor       float64
	MaxAttempts  int
}

// Do invokes the function until it returns false, the attempts are exhausted, or the context
// is done. The error from the final attempt is returned when attempts run out.
func (r *Retry) Do(ctx context.Context, name string, f func(attempt int) (retry bool, err error)) error {
	attempt := 0
	delay := r.InitialDelay
	factor := r.Factor
	if factor < 1 {
		factor = DefaultFactor
	}
	for {
		attempt++
		retry, err := f(attempt)
		if !retry {
			return err
		}
		if r.MaxAttempts > 0 && attempt >= r.MaxAttempts {
			log.L(ctx).Errorf("%s failed after %d attempts: %s", name, attempt, err)
			return err
		}
		log.L(ctx).Warnf("%s attempt %d failed (retrying in %s): %s", name, attempt, delay, err)

		if delay > r.MaximumDelay && r.MaximumDelay > 0 {
			delay = r.MaximumDelay
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return i18n.NewError(ctx, i18n.MsgContextCanceled)
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * factor)
	}
}
