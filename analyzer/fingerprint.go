package analyzer

import (
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns 64-bit highwayhash of data
func Hash(data ...[]byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	for _, chunk := range data {
		if _, err = hash.Write(chunk); err != nil {
			return 0, err
		}
	}
	return hash.Sum64(), nil
}

// fingerprint identifies source analysed with the current rule configuration
func (a *Analyzer) fingerprint(src []byte) uint64 {
	result, err := Hash([]byte(a.signature), []byte{0}, src)
	if err != nil {
		return 0
	}
	return result
}
