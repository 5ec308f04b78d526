package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/patternkit/builder"
	"go.llib.dev/patternkit/decorator"
	"go.llib.dev/patternkit/factory"
	"go.llib.dev/patternkit/observer"
	"go.llib.dev/patternkit/singleton"
	"go.llib.dev/patternkit/state"
	"go.llib.dev/patternkit/strategy"
)

func main() {
	var m cli.Mux
	m.Handle("singleton", singleton.Demo{})
	m.Handle("builder", builder.Demo{})
	m.Handle("factory", factory.Demo{})
	m.Handle("strategy", strategy.Demo{})
	m.Handle("decorator", decorator.Demo{})
	m.Handle("observer", observer.Demo{})
	m.Handle("state", state.Demo{})

	cli.Main(context.Background(), &m)
}
