package lamproom

// Commands is the handle modules and systems use to change the App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit ends the run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exiting = true
}

// Fail records err and stops the run. Only the first failure is kept.
func (cmd *Commands) Fail(err error) {
	if err == nil || cmd.app.failure != nil {
		return
	}
	cmd.app.failure = err
	cmd.app.exiting = true
}

// OnCleanup registers fn to run when App.Run returns.
func (cmd *Commands) OnCleanup(fn func()) {
	cmd.app.cleanups = append(cmd.app.cleanups, fn)
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
