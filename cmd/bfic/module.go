package main

import (
	"github.com/reusee/bfic/bficonfigs"
	"github.com/reusee/bfic/bfvm"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bficonfigs.Module
}
