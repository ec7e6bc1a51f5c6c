package tinystr

import (
	"sync"

	"github.com/vsperson/tinystr/config"
	"github.com/vsperson/tinystr/internal/elog"
	"github.com/vsperson/tinystr/internal/literal"
	"github.com/vsperson/tinystr/internal/magictab"
	"github.com/vsperson/tinystr/internal/pool"
)

// Engine is the long-lived handle every string operation runs through. It
// owns the pools, the literal table, the extended magic-string table, the
// GC escape hatch, and the logger — the injected dependencies design note
// §9 describes as "context passed to each operation or held by a
// long-lived engine handle". There is no package-level global state; two
// Engines never share a literal table or pool.
type Engine struct {
	cfg config.Config
	log *elog.Logger

	literals *literal.Store
	extended *magictab.Extended

	numbers *pool.NumberPool
	chunks  *pool.ChunkAllocator

	descPool sync.Pool // *String

	gc GCHook
}

// NewEngine builds an Engine from cfg. A nil gc installs a no-op hook that
// never frees anything (refcount overflow always falls through to the
// deep-copy branch, which is the behavior design note §9 recommends for
// embeddings without a manual-GC hook to call).
func NewEngine(cfg config.Config, gc GCHook) *Engine {
	if gc == nil {
		gc = NoopGCHook{}
	}
	e := &Engine{
		cfg:      cfg,
		log:      elog.Nop(),
		literals: literal.NewStore(),
		extended: magictab.NewExtended(),
		numbers:  pool.NewNumberPool(),
		chunks:   &pool.ChunkAllocator{},
		gc:       gc,
	}
	e.descPool.New = func() any { return new(String) }
	return e
}

// WithLogger attaches a structured logger to the engine, returning it for
// chaining.
func (e *Engine) WithLogger(l *elog.Logger) *Engine {
	if l == nil {
		l = elog.Nop()
	}
	e.log = l
	return e
}

// RegisterExtendedMagicString adds an application-specific well-known
// string to the extended magic table and returns its id. Registering the
// same bytes twice returns the original id.
func (e *Engine) RegisterExtendedMagicString(s []byte) uint16 {
	return e.extended.Register(s)
}

// InternLiteral adds a source-program string literal to the engine's
// literal table and returns a String descriptor referencing it — the
// Go stand-in for the parser handing lit_cpointer_t values to
// ecma_new_ecma_string_from_lit_cp. Text equal to a built-in or extended
// magic string is not added to the table; the magic descriptor is
// returned instead.
func (e *Engine) InternLiteral(b []byte) *String {
	if id, ok := magictab.LookupBuiltin(b, e.cfg.MagicLengthLimit); ok {
		return e.newMagic(id)
	}
	if id, ok := e.extended.Lookup(b, e.cfg.MagicLengthLimit); ok {
		return e.newMagicEx(id)
	}
	h := e.literals.InternCharset(b)
	return e.NewFromLiteralHandle(h)
}

// LoadConfig reads cfg from path and logs the load, the way an embedding
// wires config.Load's result into the engine's own structured logger.
func (e *Engine) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log.ConfigLoaded(path)
	return nil
}

// SetDebug overrides the engine's Config.Debug flag after construction,
// for callers (like a CLI's --debug flag) that decide this independently
// of whatever config file was loaded.
func (e *Engine) SetDebug(debug bool) {
	e.cfg.Debug = debug
}

func (e *Engine) allocDescriptor() *String {
	s := e.descPool.Get().(*String)
	*s = String{}
	return s
}

func (e *Engine) freeDescriptor(s *String) {
	e.descPool.Put(s)
}
