package bficonfigs

import (
	"github.com/reusee/bfic/cmds"
	"github.com/reusee/bfic/configs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/bfic/tapes"
	"github.com/reusee/bfic/vars"
)

var (
	tapeSizeFlag    = cmds.Var[*int]("-tape-size", "number of tape elements")
	widthFlag       = cmds.Var[tapes.Width]("-mem-element-size", "element width: byte, word, dword or qword")
	overflowFlag    = cmds.Var[*tapes.OverflowMode]("-mem-overflow", "cursor overflow mode: default, wrap or abort")
	debugFlag       = cmds.Switch("-debug", "enable the # tape dump instruction")
	debugShortFlag  = cmds.Switch("-d", "same as -debug")
	matchNestedFlag = cmds.Switch("-match-nested", "track nested brackets when skipping a loop")
	endCharFlag     = cmds.Var[string]("-end-char", "stop the program at this character")
	countFlag       = cmds.Switch("-count", "log run statistics")
)

type TapeSize int

// TapeSize is the number of tape elements.
// A size given by flag is passed through as is, so zero or negative sizes fail at setup.
func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	if *tapeSizeFlag != nil {
		return TapeSize(**tapeSizeFlag)
	}
	return TapeSize(vars.FirstNonZero(
		configs.First[int](loader, "tape_size"),
		tapes.DefaultSize,
	))
}

type ElementWidth tapes.Width

func (Module) ElementWidth(
	loader configs.Loader,
) ElementWidth {
	if *widthFlag != 0 {
		return ElementWidth(*widthFlag)
	}
	if name := configs.First[string](loader, "element_width"); name != "" {
		width, err := tapes.ParseWidth(name)
		if err != nil {
			panic(err)
		}
		return ElementWidth(width)
	}
	return ElementWidth(tapes.Byte)
}

type OverflowMode tapes.OverflowMode

func (Module) OverflowMode(
	loader configs.Loader,
) OverflowMode {
	if *overflowFlag != nil {
		return OverflowMode(**overflowFlag)
	}
	if name := configs.First[string](loader, "overflow"); name != "" {
		mode, err := tapes.ParseOverflowMode(name)
		if err != nil {
			panic(err)
		}
		return OverflowMode(mode)
	}
	return OverflowMode(tapes.Default)
}

// Debug enables the tape dump instruction.
type Debug bool

func (Module) Debug(
	loader configs.Loader,
) Debug {
	return Debug(*debugFlag || *debugShortFlag || configs.First[bool](loader, "debug"))
}

type MatchNested bool

func (Module) MatchNested(
	loader configs.Loader,
) MatchNested {
	return MatchNested(*matchNestedFlag || configs.First[bool](loader, "match_nested"))
}

// EndChar ends the program when read as an instruction. Zero means none.
type EndChar byte

func (Module) EndChar(
	loader configs.Loader,
	logger logs.Logger,
) EndChar {
	str := vars.FirstNonZero(
		*endCharFlag,
		configs.First[string](loader, "end_char"),
	)
	if str == "" {
		return 0
	}
	if len(str) != 1 {
		logger.Warn("end char must be a single byte, ignored", "value", str)
		return 0
	}
	return EndChar(str[0])
}

// Count reports run statistics when the run ends.
type Count bool

func (Module) Count(
	loader configs.Loader,
) Count {
	return Count(*countFlag || configs.First[bool](loader, "count"))
}
