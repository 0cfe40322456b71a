package events

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// SyncCompleted é publicado ao final de cada fullSync de uma conta.
type SyncCompleted struct {
	AccountID string
	Success   bool
}

// Bus é um barramento em processo para desacoplar o orquestrador de
// sincronização dos consumidores (hoje, a regeneração de alertas). Cada
// assinante recebe os eventos em seu próprio canal bufferizado; um assinante
// lento descarta eventos em vez de bloquear a publicação.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan SyncCompleted
	closed      bool
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registra um novo assinante e retorna seu canal de eventos.
func (b *Bus) Subscribe() <-chan SyncCompleted {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan SyncCompleted, 16)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Publish entrega o evento a todos os assinantes sem bloquear.
func (b *Bus) Publish(event SyncCompleted) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			logrus.WithFields(logrus.Fields{
				"account_id": event.AccountID,
			}).Warn("Assinante lento, evento de sincronização descartado")
		}
	}
}

// Close encerra o barramento e fecha os canais dos assinantes.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}
}
