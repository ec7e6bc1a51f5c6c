package tinystr

// ChunkBytesOutstanding reports the number of heap-chunk payload bytes
// currently allocated and not yet freed, and logs pool pressure once it
// crosses Config.ChunkPoolWatermark.
func (e *Engine) ChunkBytesOutstanding() int64 {
	n := e.chunks.Outstanding()
	if e.cfg.ChunkPoolWatermark > 0 && n >= e.cfg.ChunkPoolWatermark {
		e.log.PoolPressure("chunks", n, e.cfg.ChunkPoolWatermark)
	}
	return n
}

// NumberBytesOutstanding reports the number of bytes currently live in
// HEAP_NUMBER cells, and logs pool pressure once it crosses
// Config.NumberPoolWatermark.
func (e *Engine) NumberBytesOutstanding() int64 {
	n := e.numbers.Outstanding()
	if e.cfg.NumberPoolWatermark > 0 && n >= e.cfg.NumberPoolWatermark {
		e.log.PoolPressure("numbers", n, e.cfg.NumberPoolWatermark)
	}
	return n
}

// ExtendedMagicCount reports how many application-registered extended
// magic strings are registered on this engine.
func (e *Engine) ExtendedMagicCount() int {
	return e.extended.Count()
}
