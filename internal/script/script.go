// Package script runs Lua rc files against a session. A script gets a
// `shell` table with functions to set options, map keys, register
// commands, switch modes and raise notifications, so applications can
// ship their startup configuration as Lua instead of (or next to) the
// line-based rc format.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/uishell/internal/command"
	"github.com/dshills/uishell/internal/config"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/session"
)

// Engine evaluates Lua rc files against one session. The Lua state
// lives as long as the engine so commands registered from a script
// stay callable; Close releases it.
type Engine struct {
	session *session.Session
	parser  *config.Parser
	state   *lua.LState
}

// NewEngine creates an engine for s. parser supplies the named
// shortcut functions that `shell.map` lines refer to; it may be nil
// when scripts only use options, commands and notifications.
func NewEngine(s *session.Session, parser *config.Parser) *Engine {
	e := &Engine{session: s, parser: parser}
	e.state = e.newState()
	return e
}

// RunFile evaluates the Lua script at path.
func (e *Engine) RunFile(path string) error {
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("script: %s: %w", path, err)
	}
	return nil
}

// RunString evaluates src as a Lua chunk.
func (e *Engine) RunString(src string) error {
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Close releases the Lua state. Commands registered from scripts must
// not be invoked afterwards.
func (e *Engine) Close() {
	e.state.Close()
}

// newState builds a fresh Lua state with the shell table installed.
// Scripts get the safe base libraries only; no io, os or debug.
func (e *Engine) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(pair.fn))
		L.Push(lua.LString(pair.name))
		L.Call(1, 0)
	}

	shell := L.NewTable()
	L.SetGlobal("shell", shell)
	L.SetField(shell, "set", L.NewFunction(e.luaSet))
	L.SetField(shell, "map", L.NewFunction(e.luaMap))
	L.SetField(shell, "command", L.NewFunction(e.luaCommand))
	L.SetField(shell, "mode", L.NewFunction(e.luaMode))
	L.SetField(shell, "notify", L.NewFunction(e.luaNotify))
	return L
}

// luaSet implements shell.set(name, value).
func (e *Engine) luaSet(L *lua.LState) int {
	name := L.CheckString(1)
	var err error
	switch v := L.CheckAny(2).(type) {
	case lua.LBool:
		err = e.session.Settings().Set(name, bool(v))
	case lua.LNumber:
		f := float64(v)
		if f == float64(int(f)) {
			err = e.session.Settings().Set(name, int(f))
		} else {
			err = e.session.Settings().Set(name, f)
		}
	case lua.LString:
		err = e.session.Settings().SetFromString(name, string(v))
	default:
		err = fmt.Errorf("script: set %s: unsupported value type %s", name, v.Type())
	}
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// luaMap implements shell.map(keyspec, function [, mode]). The
// function name must be registered on the config parser.
func (e *Engine) luaMap(L *lua.LState) int {
	if e.parser == nil {
		L.RaiseError("script: map is not available without a config parser")
		return 0
	}
	spec := L.CheckString(1)
	fnName := L.CheckString(2)

	args := []string{spec, fnName}
	if L.GetTop() >= 3 {
		args = append([]string{"[" + L.CheckString(3) + "]"}, args...)
	}
	if err := e.parser.ParseLine("map " + joinFields(args)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// luaCommand implements shell.command(name, handler [, abbreviation]).
// The handler receives the arguments as separate strings.
func (e *Engine) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	abbrev := L.OptString(3, "")

	err := e.session.Commands().Register(command.Command{
		Name:         name,
		Abbreviation: abbrev,
		Handler: func(args []string) error {
			L.Push(fn)
			for _, a := range args {
				L.Push(lua.LString(a))
			}
			return L.PCall(len(args), 0, nil)
		},
	})
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// luaMode implements shell.mode(name): registers the mode and returns
// its id.
func (e *Engine) luaMode(L *lua.LState) int {
	id, err := e.session.AddMode(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(id))
	return 1
}

// luaNotify implements shell.notify(level, message).
func (e *Engine) luaNotify(L *lua.LState) int {
	level := notify.Info
	switch L.CheckString(1) {
	case "warning":
		level = notify.Warning
	case "error":
		level = notify.Error
	}
	e.session.Notify(level, L.CheckString(2))
	return 0
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += " "
		}
		out += f
	}
	return out
}
