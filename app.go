package lamproom

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the resources and systems of one program run. Systems are called
// stage by stage every frame; their parameters are filled from resources by
// type, and *Commands is always available.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any

	cleanups []func()
	exiting  bool
	failure  error
	frame    uint64
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs modules in order. Once a module has failed, the rest
// are skipped.
func (app *App) UseModules(modules ...Module) *App {
	for _, module := range modules {
		if app.failure != nil {
			break
		}
		app.modules = append(app.modules, module)
		module.Install(app, app.Commands())
	}
	return app
}

// Run executes frames until a system requests exit or fails. Cleanup
// functions run in reverse registration order before Run returns.
func (app *App) Run() error {
	defer app.runCleanups()

	if app.failure != nil {
		return fmt.Errorf("startup: %w", app.failure)
	}

	logger := app.Logger()
	logger.Infof("running %d modules", len(app.modules))

	for !app.exiting {
		app.Step()
		if app.failure != nil {
			return fmt.Errorf("frame %d: %w", app.frame, app.failure)
		}
	}

	logger.Infof("exit after %d frames", app.frame)
	return nil
}

// Step runs every stage once.
func (app *App) Step() {
	app.frame++
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
			if app.failure != nil {
				return
			}
		}
	}
}

// Frame is the number of frames started so far.
func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) Exiting() bool {
	return app.exiting
}

func (app *App) Err() error {
	return app.failure
}

func (app *App) runCleanups() {
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		app.cleanups[i]()
	}
	app.cleanups = nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) hasResource(t reflect.Type) bool {
	_, ok := app.resources[t]
	return ok
}

// Resource returns the resource of type *T.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(app.unresolved(systemType, systemValue, argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			panic(app.unresolved(systemType, systemValue, argType))
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(systemType reflect.Type, systemValue reflect.Value, argType reflect.Type) string {
	return fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
}
