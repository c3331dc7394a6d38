package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
	TypeStart  Type = "start"
	TypePause  Type = "pause"
	TypeCancel Type = "cancel"
	TypeTheme  Type = "theme"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name           string
	TotalPomodoros int
}

// TargetArgs addresses a task by its 1-based position in the list.
type TargetArgs struct {
	Position int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeEdit, TypeDelete:
		return parseTarget(input, Type(head), args)
	case TypeClear, TypeStart, TypePause, TypeCancel, TypeTheme:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts "add NAME [xN]"; a trailing xN sets the pomodoro target.
func parseAdd(raw string, args []string) (Command, error) {
	total := 1
	if n := len(args); n > 1 {
		last := strings.ToLower(args[n-1])
		if strings.HasPrefix(last, "x") {
			if v, err := strconv.Atoi(last[1:]); err == nil {
				if v < 1 {
					return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "pomodoro target must be at least 1"}
				}
				total = v
				args = args[:n-1]
			}
		}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, TotalPomodoros: total}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", typ)}
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Position: pos}}, nil
}
