package cache

import (
	"github.com/minio/highwayhash"
)

var hashKey = []byte("transparencyai-outcome-cache-k01")

// Fingerprint hashes the model id and prompt that produced an outcome
func Fingerprint(model, prompt string) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write([]byte(model)); err != nil {
		return 0, err
	}
	if _, err := h.Write([]byte{0}); err != nil {
		return 0, err
	}
	if _, err := h.Write([]byte(prompt)); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
