// Package idgen hands out short unique task ids.
package idgen

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// DefaultLength matches the short ids shown in the task list.
const DefaultLength = 10

type Generator interface {
	NewID(ctx context.Context) (string, error)
}

type UUIDGenerator struct {
	Length int
}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{Length: DefaultLength}
}

func (g UUIDGenerator) NewID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	raw := strings.ReplaceAll(id.String(), "-", "")
	n := g.Length
	if n <= 0 || n > len(raw) {
		n = len(raw)
	}
	return raw[:n], nil
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context) (string, error)

func (f GeneratorFunc) NewID(ctx context.Context) (string, error) { return f(ctx) }
