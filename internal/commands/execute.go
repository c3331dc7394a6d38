package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Edit   func(TargetArgs) (Result, error)
	Delete func(TargetArgs) (Result, error)
	Clear  func() (Result, error)
	Start  func() (Result, error)
	Pause  func() (Result, error)
	Cancel func() (Result, error)
	Theme  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeEdit:
		if handlers.Edit == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Edit(*cmd.Target)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Target)
	case TypeClear:
		return call(cmd.Type, handlers.Clear)
	case TypeStart:
		return call(cmd.Type, handlers.Start)
	case TypePause:
		return call(cmd.Type, handlers.Pause)
	case TypeCancel:
		return call(cmd.Type, handlers.Cancel)
	case TypeTheme:
		return call(cmd.Type, handlers.Theme)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func call(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
