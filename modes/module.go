package modes

import (
	"github.com/reusee/dscope"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest selects development mode, in which no config files are searched.
type ModuleForTest struct {
	dscope.Module
}

func ForTest() ModuleForTest {
	return ModuleForTest{}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
