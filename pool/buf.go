// File: pool/buf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-pool/api"

// Buf is the borrow token handed out by a Pool. It carries the buffer
// region plus the slot index and generation the pool validates on return.
//
// A Buf is single-use on the return side: once returned, the generation
// recorded here goes stale and the pool rejects the token again.
type Buf struct {
	data  []byte
	slot  int
	gen   uint32
	owner *Pool
}

// Bytes exposes the buffer region. Valid until the buffer is returned.
func (b *Buf) Bytes() []byte { return b.data }

// Len reports the fixed region length.
func (b *Buf) Len() int { return len(b.data) }

var _ api.Buffer = (*Buf)(nil)
