// MODUL: scope
// ZWECK: Gepoolte float64-Puffer fuer Zwischen-Tensoren mit garantierter Freigabe
// INPUT: Puffer-Laenge
// OUTPUT: Scope mit Acquire/Close
// NEBENEFFEKTE: Puffer werden nach Close in den Pool zurueckgegeben
// ABHAENGIGKEITEN: sync (Standardbibliothek)
// HINWEISE: Pro Pipeline-Aufruf ein Scope; Close per defer, auch auf Fehlerpfaden

package preprocess

import "sync"

// BufferPool verwaltet wiederverwendbare float64-Puffer. Nebenlaeufig nutzbar.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool erstellt einen leeren Pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

func (p *BufferPool) get(n int) []float64 {
	if v, ok := p.pool.Get().(*[]float64); ok && cap(*v) >= n {
		buf := (*v)[:n]
		clear(buf)
		return buf
	}
	return make([]float64, n)
}

func (p *BufferPool) put(buf []float64) {
	buf = buf[:0]
	p.pool.Put(&buf)
}

// Scope sammelt alle Puffer einer Pipeline-Stufe. Ein Scope gehoert genau
// einer Goroutine; Daten aus Acquire sind nach Close ungueltig.
type Scope struct {
	pool   *BufferPool
	bufs   [][]float64
	closed bool
}

// Scope oeffnet einen neuen Scope.
func (p *BufferPool) Scope() *Scope {
	return &Scope{pool: p}
}

// Acquire liefert einen genullten Puffer der Laenge n.
func (s *Scope) Acquire(n int) []float64 {
	if s.closed {
		panic("preprocess: acquire on closed scope")
	}
	buf := s.pool.get(n)
	s.bufs = append(s.bufs, buf)
	return buf
}

// Live gibt die Anzahl noch nicht freigegebener Puffer zurueck
func (s *Scope) Live() int {
	return len(s.bufs)
}

// Close gibt alle Puffer an den Pool zurueck. Mehrfaches Close ist erlaubt.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	for _, buf := range s.bufs {
		s.pool.put(buf)
	}
	s.bufs = nil
	s.closed = true
}
