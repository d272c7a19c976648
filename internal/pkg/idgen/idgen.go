// Package idgen generates card identifiers.
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmtoolbox/inserts-api/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/dmtoolbox/inserts-api/internal/pkg/idgen Generator

// Generator produces unique identifiers. Uniqueness is advisory
// (timestamp plus random suffix), not cryptographically guaranteed — good
// enough to tell cards apart in a local list.
type Generator interface {
	Generate() string
}

// InsertGenerator produces ids in the stored-card format:
// millisecond timestamp, a dash, and a short base-36 random suffix
// (e.g. "1756600000000-k3f9x2a").
type InsertGenerator struct {
	clock clock.Clock
}

// NewInsert creates the card id generator.
func NewInsert() *InsertGenerator {
	return NewInsertWithClock(clock.New())
}

// NewInsertWithClock creates the card id generator with an explicit clock;
// for tests that pin the timestamp half of the id.
func NewInsertWithClock(c clock.Clock) *InsertGenerator {
	return &InsertGenerator{clock: c}
}

// suffixSpace bounds the random suffix at seven base-36 digits.
var suffixSpace = new(big.Int).Exp(big.NewInt(36), big.NewInt(7), nil)

// Generate creates a new card id.
func (g *InsertGenerator) Generate() string {
	n, err := rand.Int(rand.Reader, suffixSpace)
	if err != nil {
		// crypto/rand failing means the platform itself is broken.
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return fmt.Sprintf("%d-%s", g.clock.Now().UnixMilli(), n.Text(36))
}

// SequentialGenerator produces deterministic ids for tests.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential generator with an optional prefix.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next id in sequence.
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return strconv.FormatUint(n, 10)
}

// UUIDGenerator produces UUID-based ids for callers that want stronger
// uniqueness than the stored-card format.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator with an optional prefix.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based id.
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
