package bfvm

import (
	"github.com/reusee/bfic/debugs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Debugs debugs.Module
}

type NewVM func(config Config) *VM

func (Module) NewVM(
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewVM {
	return func(config Config) *VM {
		return &VM{
			Config:  config,
			Logger:  logger,
			NewSpan: newSpan,
		}
	}
}
