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

package identity

import (
	"context"
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

// identifierLocks serializes mutations of each identifier, while leaving
// distinct identifiers free to proceed in parallel
type identifierLocks struct {
	mux     sync.Mutex
	timeout time.Duration
	locks   map[string]*identifierLock
}

type identifierLock struct {
	ch   chan struct{}
	refs int
}

func newIdentifierLocks(timeout time.Duration) *identifierLocks {
	return &identifierLocks{
		timeout: timeout,
		locks:   make(map[string]*identifierLock),
	}
}

func (il *identifierLocks) ref(id string) *identifierLock {
	il.mux.Lock()
	defer il.mux.Unlock()
	l, ok := il.locks[id]
	if !ok {
		l = &identifierLock{ch: make(chan struct{}, 1)}
		il.locks[id] = l
	}
	l.refs++
	return l
}

func (il *identifierLocks) unref(id string, l *identifierLock) {
	il.mux.Lock()
	defer il.mux.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(il.locks, id)
	}
}

// acquire blocks until the lock is held, the context is cancelled, or the
// lock timeout expires. The returned function releases the lock.
func (il *identifierLocks) acquire(ctx context.Context, id string) (func(), error) {
	l := il.ref(id)
	waitCtx := ctx
	if il.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, il.timeout)
		defer cancel()
	}
	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			il.unref(id, l)
		}, nil
	case <-waitCtx.Done():
		il.unref(id, l)
		return nil, i18n.NewError(ctx, i18n.MsgLockTimeout, id)
	}
}
