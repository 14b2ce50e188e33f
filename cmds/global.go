package cmds

// GlobalExecutor holds the commands registered by package level Define, Var, Switch and Collect.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}
