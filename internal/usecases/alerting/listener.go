package alerting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/events"
)

// RegenerationListener consome eventos de sincronização concluída e dispara a
// regeneração de alertas da conta sincronizada. Mesmo sincronizações parciais
// regeneram: os níveis que sincronizaram trazem dados novos.
type RegenerationListener struct {
	bus     *events.Bus
	service Service
}

func NewRegenerationListener(bus *events.Bus, service Service) *RegenerationListener {
	return &RegenerationListener{bus: bus, service: service}
}

// Start assina o barramento e processa eventos até o contexto ser cancelado
// ou o barramento fechado.
func (l *RegenerationListener) Start(ctx context.Context) {
	ch := l.bus.Subscribe()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-ch:
				if !ok {
					return
				}

				logrus.WithFields(logrus.Fields{
					"account_id":   event.AccountID,
					"sync_success": event.Success,
				}).Info("Sincronização concluída, regenerando alertas")

				if _, err := l.service.Regenerate(ctx, event.AccountID); err != nil {
					logrus.WithFields(logrus.Fields{
						"account_id": event.AccountID,
						"error":      err.Error(),
					}).Error("Erro ao regenerar alertas após sincronização")
				}
			}
		}
	}()
}
