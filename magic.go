package tinystr

import "github.com/vsperson/tinystr/internal/magictab"

// MagicID reports whether s's logical content is a built-in magic
// string, and if so, its id. ContainerMagic answers from its payload.
// Any other string whose byte-size exceeds Config.MagicLengthLimit is
// rejected without materializing it; the rest are materialized and
// looked up. Constructors canonicalize most matching text already, but
// not all of it: a Concat result is never canonicalized, and
// NewFromUint32 keeps ContainerUint32 even for values such as 0 whose
// decimal form is a built-in entry.
func (e *Engine) MagicID(s *String) (uint16, bool) {
	if s.container == ContainerMagic {
		return uint16(s.common), true
	}
	if e.Size(s) > e.cfg.MagicLengthLimit {
		return 0, false
	}
	return magictab.LookupBuiltin(e.Bytes(s), e.cfg.MagicLengthLimit)
}

// ExtendedMagicID reports whether s's logical content is an
// application-registered extended magic string, and if so, its id. It
// takes the same steps as MagicID against the extended table.
func (e *Engine) ExtendedMagicID(s *String) (uint16, bool) {
	if s.container == ContainerMagicEx {
		return uint16(s.common), true
	}
	if e.Size(s) > e.cfg.MagicLengthLimit {
		return 0, false
	}
	return e.extended.Lookup(e.Bytes(s), e.cfg.MagicLengthLimit)
}
