// Package singleton demonstrates the Singleton pattern on a database
// connection pool: a process-wide accessor that always hands back the same
// pool, dialed once with the canonical configuration.
//
// The naive counterpart in naive.go lets every caller dial its own pool with
// whatever configuration it happens to have at hand.
package singleton

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Out receives the dial narration.
// The demo and the tests point it at their own writer.
var Out io.Writer = os.Stdout

const (
	defaultHost = "localhost"
	defaultPort = 5432
)

// Pool represents a database connection pool.
// In this corpus it never talks to a real database;
// dialing only narrates what a real pool would do.
type Pool struct {
	host string
	port int
}

// Addr returns the address the pool was dialed against.
func (p *Pool) Addr() string {
	return fmt.Sprintf("%s:%d", p.host, p.port)
}

var (
	once     sync.Once
	instance *Pool
)

// Instance returns the process-wide connection pool.
// The first call dials it with the canonical configuration;
// every later call returns the identical *Pool.
func Instance() *Pool {
	once.Do(func() {
		instance = dial(defaultHost, defaultPort)
	})
	return instance
}

// InstanceCount reports how many pools the Instance accessor ever dialed.
// By construction it is zero before the first Instance call and one after.
func InstanceCount() int {
	if instance == nil {
		return 0
	}
	return 1
}

func dial(host string, port int) *Pool {
	p := &Pool{host: host, port: port}
	logger.Debug(context.Background(), "dialing database pool", logging.Field("addr", p.Addr()))
	fmt.Fprintf(Out, "Connection #1 created -> %s\n", p.Addr())
	return p
}

// reset restores the package to its pre-dial state. Test helper only.
func reset() {
	once = sync.Once{}
	instance = nil
	naiveDials = 0
}
