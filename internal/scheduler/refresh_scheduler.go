package scheduler

import (
	"log"
	"time"
)

// RefreshScheduler recarga periódicamente las colecciones cacheadas desde el
// almacén remoto. Por defecto el sitio funciona solo con recargas manuales
// desde el panel; este scheduler existe para instalaciones con más de un
// administrador y se habilita con un intervalo mayor a cero.
type RefreshScheduler struct {
	interval time.Duration
	targets  map[string]func() error
	ticker   *time.Ticker
	done     chan struct{}
}

// NewRefreshScheduler crea el scheduler con las colecciones a recargar.
func NewRefreshScheduler(interval time.Duration, targets map[string]func() error) *RefreshScheduler {
	return &RefreshScheduler{
		interval: interval,
		targets:  targets,
		done:     make(chan struct{}),
	}
}

// Start inicia el ciclo de recargas. Con intervalo cero no hace nada.
func (s *RefreshScheduler) Start() {
	if s.interval <= 0 {
		log.Println("🕐 Periodic collection refresh disabled")
		return
	}

	log.Printf("🕐 Periodic collection refresh every %v", s.interval)

	s.ticker = time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.RefreshAll()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop detiene el scheduler.
func (s *RefreshScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		log.Println("🛑 Periodic collection refresh stopped")
	}
}

// RefreshAll recarga todas las colecciones registradas.
func (s *RefreshScheduler) RefreshAll() {
	for name, refresh := range s.targets {
		if err := refresh(); err != nil {
			log.Printf("❌ Error refreshing %s: %v", name, err)
		} else {
			log.Printf("✅ Collection %s refreshed", name)
		}
	}
}
