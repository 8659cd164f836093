package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"github.com/feather-lang/feather"
	"go.uber.org/zap"

	"github.com/feather-lang/nativebridge"
	"github.com/feather-lang/nativebridge/config"
	"github.com/feather-lang/nativebridge/jsbridge"
	"github.com/feather-lang/nativebridge/native"
	"github.com/feather-lang/nativebridge/tclbridge"
)

// engine evaluates source in one script language.
type engine interface {
	Eval(name, src string) (string, error)
	// Incomplete reports whether src needs more lines before it can run.
	Incomplete(src string) bool
	Close()
}

// session is one toolkit, factory and engine built from a config.
type session struct {
	toolkit *native.Toolkit
	factory *nativebridge.Factory
	engine  engine
	logger  *zap.Logger
}

func newSession(cfg config.Config, lang string, out io.Writer) (*session, error) {
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	tk := native.NewToolkit(native.WithAllocationLimit(cfg.AllocationLimit))
	f := nativebridge.NewFactory(tk,
		nativebridge.WithLogger(logger),
		nativebridge.WithPreferredWidth(cfg.PreferredWidth),
	)

	s := &session{toolkit: tk, factory: f, logger: logger}
	switch lang {
	case config.EngineJS:
		s.engine = &jsEngine{rt: jsbridge.New(f, jsbridge.WithOutput(out))}
	case config.EngineTCL:
		interp := feather.New()
		s.engine = &tclEngine{interp: interp, bridge: tclbridge.Bind(interp, f)}
	default:
		return nil, fmt.Errorf("unknown engine %q", lang)
	}
	logger.Debug("session started", zap.String("engine", lang))
	return s, nil
}

func (s *session) Close() {
	s.engine.Close()
	s.factory.Close()
	_ = s.logger.Sync()
}

type jsEngine struct {
	rt *jsbridge.Runtime
}

func (e *jsEngine) Eval(name, src string) (string, error) {
	v, err := e.rt.RunScript(name, src)
	if err != nil {
		return "", err
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return "", nil
	}
	return v.String(), nil
}

func (e *jsEngine) Incomplete(src string) bool {
	_, err := goja.Compile("repl", src, false)
	return err != nil && strings.Contains(err.Error(), "Unexpected end of input")
}

func (e *jsEngine) Close() { e.rt.Close() }

type tclEngine struct {
	interp *feather.Interp
	bridge *tclbridge.Bridge
}

func (e *tclEngine) Eval(_, src string) (string, error) {
	return e.bridge.Eval(src)
}

func (e *tclEngine) Incomplete(src string) bool {
	return e.interp.Parse(src).Status == feather.ParseIncomplete
}

func (e *tclEngine) Close() {
	e.bridge.Close()
	e.interp.Close()
}
