package bficonfigs

import (
	"github.com/reusee/bfic/configs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
