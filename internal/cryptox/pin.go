// Package cryptox holds the credential primitives used by the ledger.
//
// PINs are never stored in clear. A PinCredential keeps a random salt and an
// argon2id digest of the PIN; verification re-derives the digest with the
// same parameters and compares it in constant time.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/gophatm/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt attached to every credential.
const SaltSize = 16

// PinParams are the argon2id cost parameters.
type PinParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultPinParams mirror the key-derivation settings used for master keys.
var DefaultPinParams = PinParams{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// PinCredential is a salted, hashed PIN.
type PinCredential struct {
	Salt   []byte
	Hash   []byte
	Params PinParams
}

// HashPin derives the argon2id digest of pin with the given salt.
func HashPin(pin, salt []byte, p PinParams) []byte {
	return argon2.IDKey(pin, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// NewPinCredential hashes pin under a fresh random salt.
func NewPinCredential(pin string, p PinParams) PinCredential {
	salt := common.GenerateRandByteArray(SaltSize)
	raw := []byte(pin)
	defer common.WipeByteArray(raw)

	return PinCredential{Salt: salt, Hash: HashPin(raw, salt, p), Params: p}
}

// Verify reports whether candidate hashes to the stored digest.
func (c PinCredential) Verify(candidate string) bool {
	if len(c.Hash) == 0 || c.Params.Time == 0 {
		return false
	}
	raw := []byte(candidate)
	defer common.WipeByteArray(raw)

	got := HashPin(raw, c.Salt, c.Params)
	return subtle.ConstantTimeCompare(c.Hash, got) == 1
}
